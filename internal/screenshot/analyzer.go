package screenshot

import (
	"fmt"
	"regexp"
	"strings"
)

// Keyword tiers for OCR'd screenshot text. Screenshots carry far more
// context than a single SMS, so the weights are tiered rather than flat.
var (
	highPriorityKeywords = []string{
		"congratulations", "won", "winner", "prize", "lottery", "lucky draw",
		"claim now", "claim your", "expired", "expire soon", "urgent action",
		"verify now", "verify immediately", "confirm now", "suspended account",
		"blocked account", "unusual activity", "unauthorized", "click here immediately",
		"limited time offer", "act now", "last chance", "rs", "rupees",
		"lakh", "crore", "million", "deposit", "withdraw",
	}

	mediumPriorityKeywords = []string{
		"otp", "verify", "blocked", "suspended", "urgent", "reward", "offer",
		"khalti", "esewa", "imepay", "fonepay", "bank", "account", "password",
		"pin", "code", "security", "update", "confirm", "click here", "link",
		"whatsapp", "call", "contact", "number", "malik", "customer care",
	}

	lowPriorityKeywords = []string{
		"message", "dear", "hello", "congratulation", "transfer", "payment",
		"cash", "selected", "lucky",
	}

	suspiciousPatterns = []string{
		"tap to learn more",
		"call me",
		"contact number",
		"whatsapp number",
		"lottery no",
		"draw offer",
	}

	moneyTerms   = []string{"rs", "rupees", "lakh", "crore"}
	urgencyWords = []string{"urgent", "immediately", "now", "today", "expire", "last chance"}
)

const (
	highPriorityWeight   = 0.25
	mediumPriorityWeight = 0.15
	lowPriorityWeight    = 0.08
	patternWeight        = 0.20

	multiplePhonesBonus = 0.15
	moneyTermsBonus     = 0.10
	linkBonus           = 0.15
	urgencyBonus        = 0.15
	urgencyMinWords     = 2

	maxAnalysisScore = 0.99
	maxShownKeywords = 15
)

var phonePattern = regexp.MustCompile(`\b\d{10,}\b`)

const noTextExplanation = "No text could be extracted from the image. Please ensure the image is clear and contains readable text."

// AnalyzeText scores OCR'd screenshot text for scam indicators. It returns
// the probability, the matched keywords (capped for display) and a
// human-readable explanation.
func AnalyzeText(text string) (float64, []string, string) {
	if strings.TrimSpace(text) == "" {
		return 0.0, []string{}, noTextExplanation
	}

	textLower := strings.ToLower(text)
	score := 0.0
	detected := []string{}
	seen := make(map[string]struct{})

	match := func(keywords []string, weight float64) {
		for _, kw := range keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			if strings.Contains(textLower, kw) {
				seen[kw] = struct{}{}
				detected = append(detected, kw)
				score += weight
			}
		}
	}

	match(highPriorityKeywords, highPriorityWeight)
	match(mediumPriorityKeywords, mediumPriorityWeight)
	match(lowPriorityKeywords, lowPriorityWeight)

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(textLower, pattern) {
			score += patternWeight
		}
	}

	if len(phonePattern.FindAllString(text, -1)) >= 2 {
		score += multiplePhonesBonus
		detected = append(detected, "multiple phone numbers")
	}

	for _, term := range moneyTerms {
		if strings.Contains(textLower, term) {
			score += moneyTermsBonus
			break
		}
	}

	if strings.Contains(textLower, "http") || strings.Contains(textLower, "www.") || strings.Contains(textLower, ".com") {
		score += linkBonus
		detected = append(detected, "contains link")
	}

	urgencyCount := 0
	for _, word := range urgencyWords {
		if strings.Contains(textLower, word) {
			urgencyCount++
		}
	}
	if urgencyCount >= urgencyMinWords {
		score += urgencyBonus
		detected = append(detected, "urgency tactics")
	}

	if score > maxAnalysisScore {
		score = maxAnalysisScore
	}

	// The explanation reports the full match count even when the
	// keyword list shown to the caller gets capped.
	explanation := explanationFor(score, len(detected))

	if len(detected) > maxShownKeywords {
		detected = detected[:maxShownKeywords]
	}

	return score, detected, explanation
}

func explanationFor(score float64, keywordCount int) string {
	switch {
	case score >= 0.75:
		return fmt.Sprintf("HIGH RISK: Strong scam indicators detected. Message contains %d suspicious elements including high-priority scam keywords. Do not respond, share OTPs, or click any links.", keywordCount)
	case score >= 0.50:
		return fmt.Sprintf("MEDIUM-HIGH RISK: Message contains %d suspicious keywords and patterns. Likely a scam attempt. Verify through official channels only and never share OTPs or personal information.", keywordCount)
	case score >= 0.33:
		return fmt.Sprintf("MEDIUM RISK: Message contains %d suspicious keywords. Exercise caution and verify through official channels before taking any action.", keywordCount)
	default:
		return "LOW RISK: Few scam indicators detected. Still verify unsolicited messages through official channels."
	}
}
