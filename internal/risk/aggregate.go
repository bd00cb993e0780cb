package risk

import (
	"math"
	"time"

	"github.com/numbershield/numbershield/internal/reports"
	"github.com/numbershield/numbershield/internal/scoring"
)

const (
	// maxRiskScore caps an assessment; a number never reaches certainty
	maxRiskScore = 0.99

	// volumeWeight scales the logarithmic report-count term so volume alone
	// cannot dominate without corroborating anomaly signals
	volumeWeight = 0.1

	spikeBonus           = 0.15
	burstBonus           = 0.15
	repeatedMessageBonus = 0.10
	suspiciousBonus      = 0.20

	recentReportsShown = 10
)

// Aggregate combines the latest message score, report volume and anomaly
// signals into a risk assessment. History must be ordered newest first.
func Aggregate(number string, history []reports.Report, now time.Time) *RiskAssessment {
	count := len(history)

	latestProb := 0.0
	if count > 0 {
		latestProb = scoring.Score(history[0].Message)
	}

	flags := ComputeAnomalyFlags(history, now)
	suspicious := ComputeSuspiciousActivity(history, now)

	bonus := 0.0
	if flags.Spike {
		bonus += spikeBonus
	}
	if flags.Burst {
		bonus += burstBonus
	}
	if flags.RepeatedMessage {
		bonus += repeatedMessageBonus
	}
	if suspicious.Detected {
		bonus += suspiciousBonus
	}

	score := latestProb + volumeWeight*math.Log(1+float64(count)) + bonus
	score = math.Min(score, maxRiskScore)

	shown := count
	if shown > recentReportsShown {
		shown = recentReportsShown
	}
	summaries := make([]ReportSummary, 0, shown)
	for _, r := range history[:shown] {
		summaries = append(summaries, ReportSummary{
			Category:        r.Category,
			CreatedAt:       r.CreatedAt,
			ScamProbability: round3(r.ScamProbability),
		})
	}

	return &RiskAssessment{
		Number:             number,
		RiskScore:          round3(score),
		RiskLevel:          scoring.LevelFor(score),
		ReportCount:        count,
		Anomalies:          flags.Active(),
		SuspiciousActivity: suspicious,
		RecentReports:      summaries,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
