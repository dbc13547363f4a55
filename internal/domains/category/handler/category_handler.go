package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/domains/category/service"
	"bookadmin-backend/internal/shared/response"
)

// Handler - HTTP handler for the category resource.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListCategories - GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	var req category.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, result.Categories, &response.Meta{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
	})
}

// ListAllCategories - GET /categories/all
// The unpaginated collection for filter dropdowns.
func (h *Handler) ListAllCategories(c *gin.Context) {
	all, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, all)
}

// GetCategory - GET /categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	cat, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

// CreateCategory - POST /categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req category.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// UpdateCategory - PUT /categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req category.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// DeleteCategory - DELETE /categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	summary, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
