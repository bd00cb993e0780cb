package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/pagination"
	"github.com/numbershield/numbershield/pkg/validation"
)

// Handler handles HTTP requests for report submission
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SubmitReport stores a new scam report
// POST /api/v1/reports
func (h *Handler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponse(c, http.StatusBadRequest, validation.NewValidationError(verrs).Error())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to store report")
		return
	}

	common.CreatedResponse(c, report.ToResponse())
}

// GetReportHistory returns the stored reports for a number, newest first
// GET /api/v1/reports/:number
func (h *Handler) GetReportHistory(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "number is required")
		return
	}

	history, err := h.service.History(c.Request.Context(), number)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load report history")
		return
	}

	params := pagination.ParseParams(c)
	total := int64(len(history))

	page := []ReportResponse{}
	if params.Offset < len(history) {
		end := params.Offset + params.Limit
		if end > len(history) {
			end = len(history)
		}
		for _, r := range history[params.Offset:end] {
			page = append(page, r.ToResponse())
		}
	}

	common.SuccessResponseWithMeta(c, page, pagination.BuildMeta(params.Limit, params.Offset, total))
}

// RegisterRoutes registers report routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/reports", h.SubmitReport)
		api.GET("/reports/:number", h.GetReportHistory)
	}
}
