package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin-backend/internal/domains/auth/facade"
	"bookadmin-backend/internal/domains/auth/service"
	"bookadmin-backend/internal/mockapi"
	"bookadmin-backend/internal/state"
	"bookadmin-backend/pkg/jwt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *state.AuthStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := mockapi.NewClient(mockapi.NewStore(), 0)
	session := state.NewAuthStore(context.Background(), nil)
	svc := service.NewService(facade.New(client), jwt.NewManager("test-secret", time.Hour), session)
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", h.Logout)
	router.GET("/auth/me", h.Me)
	return router, session
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	router, session := newTestRouter(t)

	w := postJSON(router, "/auth/login", `{"email":"admin@example.com","password":"password"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "user-1", envelope.Data.User.ID)
	assert.Equal(t, "admin", envelope.Data.User.Role)
	assert.NotEmpty(t, envelope.Data.Token)

	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, envelope.Data.Token, session.Token())
}

func TestLoginWrongPassword(t *testing.T) {
	router, session := newTestRouter(t)

	w := postJSON(router, "/auth/login", `{"email":"admin@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, session.IsAuthenticated())
}

func TestLoginValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/auth/login", `{"email":"not-an-email","password":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "email")
	assert.Contains(t, envelope.Error.Details, "password")
}

func TestMeAndLogout(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	postJSON(router, "/auth/login", `{"email":"admin@example.com","password":"password"}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
