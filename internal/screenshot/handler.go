package screenshot

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/pagination"
)

// Handler handles HTTP requests for screenshot analysis
type Handler struct {
	service *Service
}

// NewHandler creates a new screenshot handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AnalyzeScreenshot analyzes an uploaded screenshot for scam content
// POST /api/v1/analyze-screenshot
func (h *Handler) AnalyzeScreenshot(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to analyze screenshot")
		return
	}

	common.SuccessResponse(c, result)
}

// GetScamGallery lists stored high-risk screenshots
// GET /api/v1/scam-gallery?limit=
func (h *Handler) GetScamGallery(c *gin.Context) {
	limit := DefaultGalleryLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			common.ErrorResponse(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if parsed > pagination.MaxLimit {
			parsed = pagination.MaxLimit
		}
		limit = parsed
	}

	items, err := h.service.Gallery(c.Request.Context(), limit)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load scam gallery")
		return
	}

	common.SuccessResponse(c, items)
}

// RemoveFromGallery deletes a stored high-risk screenshot
// DELETE /api/v1/scam-gallery/*key
func (h *Handler) RemoveFromGallery(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "key is required")
		return
	}

	if err := h.service.RemoveFromGallery(c.Request.Context(), key); err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to delete screenshot")
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": key})
}

// RegisterRoutes registers screenshot routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/analyze-screenshot", h.AnalyzeScreenshot)
		api.GET("/scam-gallery", h.GetScamGallery)
		api.DELETE("/scam-gallery/*key", h.RemoveFromGallery)
	}
}
