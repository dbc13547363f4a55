package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/domains/recommendation/service"
	"bookadmin-backend/internal/shared/response"
)

// Handler - HTTP handler for recommendation settings.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetSettings - GET /settings/recommendations
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// UpdateSettings - PUT /settings/recommendations
// The payload replaces the whole settings record.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings recommendation.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}
