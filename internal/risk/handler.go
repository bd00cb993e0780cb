package risk

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/numbershield/numbershield/pkg/common"
)

// Handler handles HTTP requests for risk lookups
type Handler struct {
	service *Service
}

// NewHandler creates a new risk handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetRiskAssessment returns the risk assessment for a number
// GET /api/v1/numbers/:number
func (h *Handler) GetRiskAssessment(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "number is required")
		return
	}

	assessment, err := h.service.Assess(c.Request.Context(), number)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to assess number")
		return
	}

	common.SuccessResponse(c, assessment)
}

// CheckSuspiciousActivity returns the suspicious-activity verdict for a number
// GET /api/v1/sim-swap/:number
func (h *Handler) CheckSuspiciousActivity(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "number is required")
		return
	}

	check, err := h.service.CheckSuspiciousActivity(c.Request.Context(), number)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to check number")
		return
	}

	common.SuccessResponse(c, check)
}

// RegisterRoutes registers risk lookup routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/numbers/:number", h.GetRiskAssessment)
		api.GET("/sim-swap/:number", h.CheckSuspiciousActivity)
	}
}
