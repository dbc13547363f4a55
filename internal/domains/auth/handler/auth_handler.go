package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/domains/auth/service"
	"bookadmin-backend/internal/shared/response"
)

// Handler - HTTP handler for authentication.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login - POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var credentials auth.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	session, err := h.service.Login(c.Request.Context(), credentials)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// Logout - POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me - GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.service.Current(c.Request.Context())
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateProfile - PATCH /auth/me
func (h *Handler) UpdateProfile(c *gin.Context) {
	var patch auth.SessionUserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	merged := h.service.UpdateProfile(c.Request.Context(), patch)
	response.Success(c, http.StatusOK, merged)
}
