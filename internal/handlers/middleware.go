package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware.
const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

// authMiddleware resolves the bearer token to a user and stores the
// principal in the request context. The token store is consulted on every
// request; a token deleted by logout fails here immediately.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserID, user.ID)
	c.Set(ctxUsername, user.Username)
	c.Next()
}

// principalID returns the authenticated user's id set by authMiddleware.
func principalID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}

// requestLogger tags each request with an id and logs method, path, status
// and duration once the handler chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log == nil {
		c.Next()
		return
	}

	start := time.Now()
	reqID := uuid.NewString()
	c.Writer.Header().Set("X-Request-ID", reqID)

	c.Next()

	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
