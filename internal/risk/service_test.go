package risk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numbershield/numbershield/internal/alerts"
	"github.com/numbershield/numbershield/internal/reports"
	"github.com/numbershield/numbershield/internal/scoring"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Insert(ctx context.Context, report *reports.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) FindByNumber(ctx context.Context, number string) ([]reports.Report, error) {
	args := m.Called(ctx, number)
	history, _ := args.Get(0).([]reports.Report)
	return history, args.Error(1)
}

type spyPublisher struct {
	reportEvents   []alerts.ReportCreatedEvent
	highRiskEvents []alerts.HighRiskEvent
}

func (s *spyPublisher) ReportCreated(_ context.Context, event alerts.ReportCreatedEvent) {
	s.reportEvents = append(s.reportEvents, event)
}

func (s *spyPublisher) HighRisk(_ context.Context, event alerts.HighRiskEvent) {
	s.highRiskEvents = append(s.highRiskEvents, event)
}

func newTestService(repo reports.RepositoryInterface, publisher alerts.Publisher, now time.Time) *Service {
	service := NewService(repo, publisher)
	service.now = func() time.Time { return now }
	return service
}

func TestAssessNormalizesNumberBeforeLookup(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepository)
	service := newTestService(repo, nil, time.Now().UTC())

	repo.On("FindByNumber", ctx, "+9779841234567").Return([]reports.Report(nil), nil).Once()

	assessment, err := service.Assess(ctx, "984-123-4567")

	require.NoError(t, err)
	assert.Equal(t, "+9779841234567", assessment.Number)
	repo.AssertExpectations(t)
}

func TestAssessUnknownNumberIsLowRisk(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepository)
	publisher := &spyPublisher{}
	service := newTestService(repo, publisher, time.Now().UTC())

	repo.On("FindByNumber", ctx, mock.Anything).Return([]reports.Report(nil), nil).Once()

	assessment, err := service.Assess(ctx, "+9779841234567")

	require.NoError(t, err)
	assert.Equal(t, 0.0, assessment.RiskScore)
	assert.Equal(t, scoring.LevelLow, assessment.RiskLevel)
	assert.Equal(t, 0, assessment.ReportCount)
	assert.Empty(t, publisher.highRiskEvents)
}

func TestAssessStoreFailureReturnsServiceUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepository)
	service := newTestService(repo, nil, time.Now().UTC())

	repo.On("FindByNumber", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	assessment, err := service.Assess(ctx, "+9779841234567")

	require.Error(t, err)
	assert.Nil(t, assessment)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
}

func TestAssessHighRiskPublishesEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	repo := new(mockReportRepository)
	publisher := &spyPublisher{}
	service := newTestService(repo, publisher, now)

	history := make([]reports.Report, 0, 6)
	for i := 0; i < 6; i++ {
		history = append(history, reportAt(
			now.Add(-time.Duration(i)*time.Minute),
			"OTP Theft Attempt",
			"Your bank OTP is required, verify now or get blocked",
			0.8,
		))
	}
	repo.On("FindByNumber", ctx, mock.Anything).Return(history, nil).Once()

	assessment, err := service.Assess(ctx, "+9779841234567")

	require.NoError(t, err)
	assert.Equal(t, scoring.LevelHigh, assessment.RiskLevel)
	require.Len(t, publisher.highRiskEvents, 1)
	assert.Equal(t, "+9779841234567", publisher.highRiskEvents[0].Number)
	assert.Equal(t, assessment.RiskScore, publisher.highRiskEvents[0].RiskScore)
	assert.Equal(t, 6, publisher.highRiskEvents[0].ReportCount)
}

func TestCheckSuspiciousActivityNormalizesNumber(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	repo := new(mockReportRepository)
	service := newTestService(repo, nil, now)

	history := []reports.Report{
		reportAt(now.Add(-1*time.Hour), "OTP Theft Attempt", "give otp", 0.8),
		reportAt(now.Add(-2*time.Hour), "OTP Theft Attempt", "share code", 0.7),
		reportAt(now.Add(-3*time.Hour), "Impersonation (Bank)", "account locked", 0.9),
	}
	repo.On("FindByNumber", ctx, "+9779841234567").Return(history, nil).Once()

	check, err := service.CheckSuspiciousActivity(ctx, "9841234567")

	require.NoError(t, err)
	assert.Equal(t, "+9779841234567", check.Number)
	assert.True(t, check.Detected)
	assert.Equal(t, 3, check.RecentReportCount)
	repo.AssertExpectations(t)
}

func TestCheckSuspiciousActivityStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepository)
	service := newTestService(repo, nil, time.Now().UTC())

	repo.On("FindByNumber", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	check, err := service.CheckSuspiciousActivity(ctx, "+9779841234567")

	require.Error(t, err)
	assert.Nil(t, check)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
}
