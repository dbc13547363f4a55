package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/domains/upload/service"
	"bookadmin-backend/internal/shared/response"
)

// Handler - HTTP handler for uploaded files.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - constructor with DI.
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// UploadFile - POST /uploads
// Multipart form with a "file" field. A missing field is forwarded as
// an empty request so the backend can answer with its structured
// bad-request failure.
func (h *Handler) UploadFile(c *gin.Context) {
	var req upload.UploadRequest
	if fh, err := c.FormFile("file"); err == nil {
		req = upload.UploadRequest{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		}
	}

	uploaded, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, uploaded)
}

// ListFiles - GET /uploads
func (h *Handler) ListFiles(c *gin.Context) {
	var req upload.ListFilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, result.Files, &response.Meta{
		Page:  result.Page,
		Limit: result.Limit,
		Total: result.Total,
	})
}

// DeleteFile - DELETE /uploads/:id
func (h *Handler) DeleteFile(c *gin.Context) {
	summary, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
