package alerts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/numbershield/numbershield/pkg/logger"
	"go.uber.org/zap"
)

// NATS subjects for downstream consumers (notification bots, moderation
// tooling). Publishing is fire-and-forget: a dead broker never fails the
// originating request.
const (
	SubjectReportCreated = "reports.created"
	SubjectHighRisk      = "risk.high"
)

// ReportCreatedEvent is published for every stored report
type ReportCreatedEvent struct {
	Number          string    `json:"number"`
	Category        string    `json:"category"`
	ScamProbability float64   `json:"scam_probability"`
	CreatedAt       time.Time `json:"created_at"`
}

// HighRiskEvent is published when an assessment crosses the HIGH threshold
type HighRiskEvent struct {
	Number      string    `json:"number"`
	RiskScore   float64   `json:"risk_score"`
	ReportCount int       `json:"report_count"`
	AssessedAt  time.Time `json:"assessed_at"`
}

// Publisher emits domain events for downstream consumers
type Publisher interface {
	ReportCreated(ctx context.Context, event ReportCreatedEvent)
	HighRisk(ctx context.Context, event HighRiskEvent)
}

// NATSPublisher publishes events as JSON over NATS
type NATSPublisher struct {
	conn *nats.Conn
}

var _ Publisher = (*NATSPublisher)(nil)

// NewNATSPublisher creates a publisher over an established NATS connection
func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

// ReportCreated publishes a report-created event
func (p *NATSPublisher) ReportCreated(ctx context.Context, event ReportCreatedEvent) {
	p.publish(ctx, SubjectReportCreated, event)
}

// HighRisk publishes a high-risk event
func (p *NATSPublisher) HighRisk(ctx context.Context, event HighRiskEvent) {
	p.publish(ctx, SubjectHighRisk, event)
}

func (p *NATSPublisher) publish(ctx context.Context, subject string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to marshal event", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		logger.WithContext(ctx).Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}

// NoopPublisher discards all events. Used when NATS is disabled.
type NoopPublisher struct{}

var _ Publisher = (*NoopPublisher)(nil)

// ReportCreated implements Publisher
func (NoopPublisher) ReportCreated(context.Context, ReportCreatedEvent) {}

// HighRisk implements Publisher
func (NoopPublisher) HighRisk(context.Context, HighRiskEvent) {}
