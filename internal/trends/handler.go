package trends

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/pagination"
)

// DefaultTrendingLimit is used when no limit query parameter is provided
const DefaultTrendingLimit = 10

// Handler handles HTTP requests for trending and dashboard views
type Handler struct {
	service *Service
}

// NewHandler creates a new trends handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetTrending returns the most-reported numbers
// GET /api/v1/trending?limit=
func (h *Handler) GetTrending(c *gin.Context) {
	limit := DefaultTrendingLimit
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

	entries, err := h.service.Trending(c.Request.Context(), limit)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load trending numbers")
		return
	}

	common.SuccessResponse(c, entries)
}

// GetDashboard returns the aggregate summary
// GET /api/v1/dashboard
func (h *Handler) GetDashboard(c *gin.Context) {
	summary, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	common.SuccessResponse(c, summary)
}

// RegisterRoutes registers trending routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/trending", h.GetTrending)
		api.GET("/dashboard", h.GetDashboard)
	}
}
