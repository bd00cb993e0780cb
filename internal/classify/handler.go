package classify

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/numbershield/numbershield/internal/scoring"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/validation"
)

// Handler handles standalone message classification
type Handler struct{}

// NewHandler creates a new classify handler
func NewHandler() *Handler {
	return &Handler{}
}

// ClassifyMessage scores a single message without storing anything
// POST /api/v1/classify
func (h *Handler) ClassifyMessage(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			common.ErrorResponse(c, http.StatusBadRequest, validation.NewValidationError(verrs).Error())
			return
		}
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	score := scoring.Score(req.Message)

	common.SuccessResponse(c, ClassifyResponse{
		ScamProbability: math.Round(score*1000) / 1000,
		RiskLevel:       scoring.LevelFor(score),
		Model:           ModelName,
	})
}

// RegisterRoutes registers classification routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/classify", h.ClassifyMessage)
	}
}
