package handlers

import (
	"notes_backend/internal/logger"
	"notes_backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// defaultPageSize is used when no page size is configured.
const defaultPageSize = 10

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	pageSize int
}

// NewHandler constructs a new HTTP handler with dependencies. pageSize
// controls listing pagination; values <= 0 fall back to the default.
func NewHandler(services *service.Service, log *logger.Logger, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handler{services: services, log: log, pageSize: pageSize}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Note endpoints (protected)
	h.registerNoteRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		token := auth.Group("/token")
		{
			token.POST("/login", h.login)
			token.POST("/logout", h.authMiddleware, h.logout)
		}
	}
}

func (h *Handler) registerNoteRoutes(r *gin.Engine) {
	notes := r.Group("/notes", h.authMiddleware)
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.GET("/:id", h.getNote)
		notes.PATCH("/:id", h.updateNote)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
		notes.POST("/:id/archive", h.archiveNote)
		notes.POST("/:id/unarchive", h.unarchiveNote)
	}
}
