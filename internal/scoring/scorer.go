package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

// scamKeywords are case-insensitive substring indicators common in Nepali
// SMS scams (payment wallets, OTP theft, prize bait).
var scamKeywords = []string{"otp", "khalti", "esewa", "bank", "prize", "reward", "verify", "blocked"}

// MaxScore is the upper bound of the message scorer.
const MaxScore = 0.95

// Risk levels shared by every scoring surface. The thresholds are
// deliberately identical across message classification, screenshot analysis
// and number risk assessment.
const (
	LevelHigh   = "HIGH"
	LevelMedium = "MEDIUM"
	LevelLow    = "LOW"
)

// Score maps free text to a heuristic scam probability in [0, MaxScore].
// Longer messages add a small capped weight; each keyword hit adds 0.15 up
// to 0.6. Pure and deterministic: the same function scores messages at
// report creation and at risk recomputation.
func Score(message string) float64 {
	score := math.Min(float64(utf8.RuneCountInString(message))/200, 0.3)

	lower := strings.ToLower(message)
	hits := 0
	for _, kw := range scamKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	score += math.Min(0.15*float64(hits), 0.6)

	return math.Max(0, math.Min(score, MaxScore))
}

// LevelFor maps a score to the three-tier risk level
func LevelFor(score float64) string {
	switch {
	case score > 0.66:
		return LevelHigh
	case score > 0.33:
		return LevelMedium
	default:
		return LevelLow
	}
}
