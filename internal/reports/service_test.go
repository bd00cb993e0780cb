package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/numbershield/numbershield/internal/alerts"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Insert(ctx context.Context, report *Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockRepository) FindByNumber(ctx context.Context, number string) ([]Report, error) {
	args := m.Called(ctx, number)
	history, _ := args.Get(0).([]Report)
	return history, args.Error(1)
}

type capturePublisher struct {
	reportEvents []alerts.ReportCreatedEvent
}

func (p *capturePublisher) ReportCreated(_ context.Context, event alerts.ReportCreatedEvent) {
	p.reportEvents = append(p.reportEvents, event)
}

func (p *capturePublisher) HighRisk(context.Context, alerts.HighRiskEvent) {}

func TestSubmitNormalizesAndScores(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	publisher := &capturePublisher{}
	service := NewService(repo, publisher)

	var stored *Report
	repo.On("Insert", ctx, mock.MatchedBy(func(r *Report) bool {
		stored = r
		return r.Number == "+9779841234567" &&
			r.Category == "OTP Theft Attempt" &&
			r.Message == "Send your OTP to verify the bank account"
	})).Return(nil).Once()

	report, err := service.Submit(ctx, &SubmitReportRequest{
		Number:   "984-123-4567",
		Category: "  OTP Theft Attempt  ",
		Message:  "  Send your OTP to verify the bank account  ",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, report.ID)
	assert.NotZero(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())
	// otp, verify, bank: 3 keyword hits plus the length term
	assert.InDelta(t, 40.0/200+0.45, report.ScamProbability, 0.001)
	repo.AssertExpectations(t)
}

func TestSubmitPublishesReportCreated(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	publisher := &capturePublisher{}
	service := NewService(repo, publisher)

	repo.On("Insert", ctx, mock.Anything).Return(nil).Once()

	report, err := service.Submit(ctx, &SubmitReportRequest{
		Number:   "9841234567",
		Category: "Phishing",
		Message:  "click this link",
	})

	require.NoError(t, err)
	require.Len(t, publisher.reportEvents, 1)
	assert.Equal(t, report.Number, publisher.reportEvents[0].Number)
	assert.Equal(t, "Phishing", publisher.reportEvents[0].Category)
	assert.Equal(t, report.ScamProbability, publisher.reportEvents[0].ScamProbability)
}

func TestSubmitStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	publisher := &capturePublisher{}
	service := NewService(repo, publisher)

	repo.On("Insert", ctx, mock.Anything).Return(errors.New("connection refused")).Once()

	report, err := service.Submit(ctx, &SubmitReportRequest{
		Number:   "9841234567",
		Category: "Phishing",
		Message:  "click this link",
	})

	require.Error(t, err)
	assert.Nil(t, report)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
	assert.Empty(t, publisher.reportEvents)
}

func TestHistoryUnknownNumberIsEmptyNotError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	service := NewService(repo, nil)

	repo.On("FindByNumber", ctx, "+9779841234567").Return([]Report(nil), nil).Once()

	history, err := service.History(ctx, "9841234567")

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
	repo.AssertExpectations(t)
}

func TestHistoryStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	service := NewService(repo, nil)

	repo.On("FindByNumber", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	history, err := service.History(ctx, "9841234567")

	require.Error(t, err)
	assert.Nil(t, history)
	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
}
