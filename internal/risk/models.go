package risk

import "time"

// AnomalyFlags are short-window (60 min) behavioral signals for one number.
// Derived on every request, never persisted.
type AnomalyFlags struct {
	Spike           bool `json:"spike"`
	Burst           bool `json:"burst"`
	RepeatedMessage bool `json:"repeated_message"`
}

// Active returns the names of the raised flags
func (f AnomalyFlags) Active() []string {
	active := []string{}
	if f.Spike {
		active = append(active, "spike")
	}
	if f.Burst {
		active = append(active, "burst")
	}
	if f.RepeatedMessage {
		active = append(active, "repeated_message")
	}
	return active
}

// SuspiciousFlags are the five independent 48-hour signals feeding the
// suspicious-activity verdict.
type SuspiciousFlags struct {
	RecentSurge         bool `json:"recent_surge"`
	OTPFocus            bool `json:"otp_focus"`
	HighProbCluster     bool `json:"high_prob_cluster"`
	VictimSelfReport    bool `json:"victim_self_report"`
	MultiCategoryAttack bool `json:"multi_category_attack"`
}

// signals is the voting table behind the verdict: each entry is one vote.
// Keeping it as data (not inline conditionals) keeps the threshold tunable
// and testable in isolation.
func (f SuspiciousFlags) signals() []struct {
	Name   string
	Active bool
} {
	return []struct {
		Name   string
		Active bool
	}{
		{"recent_surge", f.RecentSurge},
		{"otp_focus", f.OTPFocus},
		{"high_prob_cluster", f.HighProbCluster},
		{"victim_self_report", f.VictimSelfReport},
		{"multi_category_attack", f.MultiCategoryAttack},
	}
}

// ActiveCount returns how many signals voted
func (f SuspiciousFlags) ActiveCount() int {
	count := 0
	for _, s := range f.signals() {
		if s.Active {
			count++
		}
	}
	return count
}

// SuspiciousActivityResult is the majority-vote verdict over the 48-hour
// signals. It hints at account-takeover-style report patterns; it does not
// prove a SIM swap.
type SuspiciousActivityResult struct {
	Detected          bool            `json:"suspicious_activity_detected"`
	Confidence        string          `json:"confidence"`
	LikelyScenario    string          `json:"likely_scenario"`
	Flags             SuspiciousFlags `json:"flags"`
	RecentReportCount int             `json:"recent_report_count"`
	OTPProportion     float64         `json:"otp_proportion"`
	UniqueCategories  []string        `json:"unique_categories"`
	Disclaimer        string          `json:"disclaimer"`
}

// SuspiciousActivityCheck is the API shape for the sim-swap check: the
// verdict merged with the normalized number it was computed for.
type SuspiciousActivityCheck struct {
	Number string `json:"number"`
	SuspiciousActivityResult
}

// ReportSummary is the trimmed view of a report included in assessments
type ReportSummary struct {
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	ScamProbability float64   `json:"scam_probability"`
}

// RiskAssessment combines message content, report volume and behavioral
// anomalies into one score and level for a number.
type RiskAssessment struct {
	Number             string                   `json:"number"`
	RiskScore          float64                  `json:"risk_score"`
	RiskLevel          string                   `json:"risk_level"`
	ReportCount        int                      `json:"report_count"`
	Anomalies          []string                 `json:"anomalies"`
	SuspiciousActivity SuspiciousActivityResult `json:"suspicious_activity"`
	RecentReports      []ReportSummary          `json:"recent_reports"`
}
