package handlers

import (
	"context"
	"net/http"

	"notes_backend/internal/models"
	"notes_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	logoutErr     error
	authUser      *models.User
	authErr       error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastLogoutUserID     int
	lastAuthToken        string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Logout(_ context.Context, userID int) error {
	m.lastLogoutUserID = userID
	return m.logoutErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastAuthToken = token
	return m.authUser, m.authErr
}

type mockNotes struct {
	note    *models.Note
	page    *service.NotePage
	err     error
	listErr error

	lastOwnerID      int
	lastID           int64
	lastCreateParams service.CreateParams
	lastUpdateParams service.UpdateParams
	lastListParams   service.ListParams
	createCalls      int
	deleteCalls      int
	archiveCalls     int
	unarchiveCalls   int
}

func (m *mockNotes) Create(_ context.Context, ownerID int, p service.CreateParams) (*models.Note, error) {
	m.createCalls++
	m.lastOwnerID = ownerID
	m.lastCreateParams = p
	return m.note, m.err
}

func (m *mockNotes) Get(_ context.Context, ownerID int, id int64) (*models.Note, error) {
	m.lastOwnerID = ownerID
	m.lastID = id
	return m.note, m.err
}

func (m *mockNotes) List(_ context.Context, ownerID int, p service.ListParams) (*service.NotePage, error) {
	m.lastOwnerID = ownerID
	m.lastListParams = p
	return m.page, m.listErr
}

func (m *mockNotes) Update(_ context.Context, ownerID int, id int64, p service.UpdateParams) (*models.Note, error) {
	m.lastOwnerID = ownerID
	m.lastID = id
	m.lastUpdateParams = p
	return m.note, m.err
}

func (m *mockNotes) Delete(_ context.Context, ownerID int, id int64) error {
	m.deleteCalls++
	m.lastOwnerID = ownerID
	m.lastID = id
	return m.err
}

func (m *mockNotes) Archive(_ context.Context, ownerID int, id int64) (*models.Note, error) {
	m.archiveCalls++
	m.lastOwnerID = ownerID
	m.lastID = id
	return m.note, m.err
}

func (m *mockNotes) Unarchive(_ context.Context, ownerID int, id int64) (*models.Note, error) {
	m.unarchiveCalls++
	m.lastOwnerID = ownerID
	m.lastID = id
	return m.note, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, 10)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
