package risk

import (
	"math"
	"strings"
	"time"

	"github.com/numbershield/numbershield/internal/reports"
)

const (
	shortWindow  = 60 * time.Minute
	mediumWindow = 48 * time.Hour

	spikeThreshold = 3
	burstThreshold = 5

	// minSuspiciousSignals is the number of concurring 48h signals required
	// for the verdict. A single strong signal is deliberately not enough.
	minSuspiciousSignals = 2

	surgeThreshold        = 4
	otpFocusProportion    = 0.5
	otpFocusMinReports    = 2
	highProbThreshold     = 0.6
	highProbClusterCount  = 3
	multiCategoryMinKinds = 3
	multiCategoryMinCount = 4
)

// otpLikeCategories indicate account-takeover attempts
var otpLikeCategories = map[string]bool{
	"OTP Theft Attempt":    true,
	"Impersonation (Bank)": true,
}

// victimKeywords are phrases suggesting the number's owner reported a hijack
var victimKeywords = []string{"hacked", "not me", "someone using", "stolen", "hijacked", "unauthorized"}

const disclaimer = "This is behavioral analysis from user reports, not telecom-level SIM swap detection."

// ComputeAnomalyFlags derives the 60-minute window flags from a number's
// report history.
func ComputeAnomalyFlags(history []reports.Report, now time.Time) AnomalyFlags {
	recent := withinWindow(history, now, shortWindow)

	flags := AnomalyFlags{
		Spike: len(recent) >= spikeThreshold,
		Burst: len(recent) >= burstThreshold,
	}

	if len(recent) > 1 {
		distinct := make(map[string]struct{}, len(recent))
		for _, r := range recent {
			distinct[strings.TrimSpace(strings.ToLower(r.Message))] = struct{}{}
		}
		// <= keeps exactly-half counting as repetition
		if float64(len(distinct)) <= float64(len(recent))/2 {
			flags.RepeatedMessage = true
		}
	}

	return flags
}

// ComputeSuspiciousActivity derives the 48-hour verdict from a number's
// report history.
func ComputeSuspiciousActivity(history []reports.Report, now time.Time) SuspiciousActivityResult {
	recent := withinWindow(history, now, mediumWindow)

	otpCount := 0
	highProbCount := 0
	victimReport := false
	var categories []string
	seen := make(map[string]struct{})

	for _, r := range recent {
		if otpLikeCategories[r.Category] {
			otpCount++
		}
		if r.ScamProbability > highProbThreshold {
			highProbCount++
		}
		if !victimReport && containsAny(strings.ToLower(r.Message), victimKeywords) {
			victimReport = true
		}
		if _, ok := seen[r.Category]; !ok {
			seen[r.Category] = struct{}{}
			categories = append(categories, r.Category)
		}
	}

	otpProportion := 0.0
	if len(recent) > 0 {
		otpProportion = float64(otpCount) / float64(len(recent))
	}

	flags := SuspiciousFlags{
		RecentSurge:         len(recent) >= surgeThreshold,
		OTPFocus:            otpProportion >= otpFocusProportion && len(recent) >= otpFocusMinReports,
		HighProbCluster:     highProbCount >= highProbClusterCount,
		VictimSelfReport:    victimReport,
		MultiCategoryAttack: len(categories) >= multiCategoryMinKinds && len(recent) >= multiCategoryMinCount,
	}

	detected := flags.ActiveCount() >= minSuspiciousSignals

	result := SuspiciousActivityResult{
		Detected:          detected,
		Confidence:        "low",
		LikelyScenario:    "Normal activity",
		Flags:             flags,
		RecentReportCount: len(recent),
		OTPProportion:     math.Round(otpProportion*1000) / 1000,
		UniqueCategories:  categories,
		Disclaimer:        disclaimer,
	}
	if detected {
		result.Confidence = "medium"
		result.LikelyScenario = "Possible post-SIM-swap scam or coordinated attack"
	}
	if result.UniqueCategories == nil {
		result.UniqueCategories = []string{}
	}

	return result
}

func withinWindow(history []reports.Report, now time.Time, window time.Duration) []reports.Report {
	cutoff := now.Add(-window)
	var recent []reports.Report
	for _, r := range history {
		if !r.CreatedAt.Before(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
