package risk

import (
	"context"
	"time"

	"github.com/numbershield/numbershield/internal/alerts"
	"github.com/numbershield/numbershield/internal/reports"
	"github.com/numbershield/numbershield/internal/scoring"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/logger"
	"github.com/numbershield/numbershield/pkg/middleware"
	"go.uber.org/zap"
)

// Service computes risk assessments and suspicious-activity verdicts.
// All derived values are recomputed per request from the stored history;
// the service holds no state of its own.
type Service struct {
	repo      reports.RepositoryInterface
	publisher alerts.Publisher
	now       func() time.Time
}

// NewService creates a new risk service
func NewService(repo reports.RepositoryInterface, publisher alerts.Publisher) *Service {
	if publisher == nil {
		publisher = alerts.NoopPublisher{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Assess returns the full risk assessment for a number. Unknown numbers get
// an empty history and a LOW assessment rather than an error.
func (s *Service) Assess(ctx context.Context, number string) (*RiskAssessment, error) {
	normalized := scoring.Normalize(number)

	history, err := s.repo.FindByNumber(ctx, normalized)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load report history", zap.String("number", normalized), zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	assessment := Aggregate(normalized, history, s.now())
	middleware.CountRiskAssessment(assessment.RiskLevel)

	if assessment.RiskLevel == scoring.LevelHigh {
		s.publisher.HighRisk(ctx, alerts.HighRiskEvent{
			Number:      assessment.Number,
			RiskScore:   assessment.RiskScore,
			ReportCount: assessment.ReportCount,
			AssessedAt:  s.now(),
		})
	}

	return assessment, nil
}

// CheckSuspiciousActivity returns the 48-hour behavioral verdict for a number
func (s *Service) CheckSuspiciousActivity(ctx context.Context, number string) (*SuspiciousActivityCheck, error) {
	normalized := scoring.Normalize(number)

	history, err := s.repo.FindByNumber(ctx, normalized)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load report history", zap.String("number", normalized), zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	return &SuspiciousActivityCheck{
		Number:                   normalized,
		SuspiciousActivityResult: ComputeSuspiciousActivity(history, s.now()),
	}, nil
}
