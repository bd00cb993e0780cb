package reports

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/numbershield/numbershield/internal/alerts"
	"github.com/numbershield/numbershield/internal/scoring"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/logger"
	"github.com/numbershield/numbershield/pkg/middleware"
	"go.uber.org/zap"
)

// Service handles report ingestion business logic
type Service struct {
	repo      RepositoryInterface
	publisher alerts.Publisher
}

// NewService creates a new report service
func NewService(repo RepositoryInterface, publisher alerts.Publisher) *Service {
	if publisher == nil {
		publisher = alerts.NoopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher}
}

// Submit normalizes the number, scores the message once and persists the
// report. The stored record is immutable from this point on.
func (s *Service) Submit(ctx context.Context, req *SubmitReportRequest) (*Report, error) {
	report := &Report{
		ID:              uuid.New(),
		Number:          scoring.Normalize(req.Number),
		Category:        strings.TrimSpace(req.Category),
		Message:         strings.TrimSpace(req.Message),
		CreatedAt:       time.Now().UTC(),
		ScamProbability: scoring.Score(strings.TrimSpace(req.Message)),
	}

	if err := s.repo.Insert(ctx, report); err != nil {
		logger.WithContext(ctx).Error("Failed to store report", zap.String("number", report.Number), zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	middleware.CountReportSubmitted(report.Category)
	s.publisher.ReportCreated(ctx, alerts.ReportCreatedEvent{
		Number:          report.Number,
		Category:        report.Category,
		ScamProbability: report.ScamProbability,
		CreatedAt:       report.CreatedAt,
	})

	return report, nil
}

// History returns all reports for a number, newest first. An unknown number
// yields an empty history, never an error.
func (s *Service) History(ctx context.Context, number string) ([]Report, error) {
	normalized := scoring.Normalize(number)

	history, err := s.repo.FindByNumber(ctx, normalized)
	if err != nil {
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}
	if history == nil {
		history = []Report{}
	}
	return history, nil
}
