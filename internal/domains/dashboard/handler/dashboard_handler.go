package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/domains/dashboard/service"
	"bookadmin-backend/internal/shared/response"
)

// Handler - HTTP handler for the dashboard.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetStats - GET /dashboard/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
