package screenshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTextEmpty(t *testing.T) {
	score, keywords, explanation := AnalyzeText("   ")

	assert.Equal(t, 0.0, score)
	assert.Empty(t, keywords)
	assert.Contains(t, explanation, "No text could be extracted")
}

func TestAnalyzeTextBenign(t *testing.T) {
	score, _, explanation := AnalyzeText("Meeting moved to 3pm, see you there")

	assert.Less(t, score, 0.33)
	assert.Contains(t, explanation, "LOW RISK")
}

func TestAnalyzeTextLotteryScam(t *testing.T) {
	text := "Congratulations! You are the lucky winner of the lottery. " +
		"Claim your prize of 10 lakh rupees now. Call 9841234567 or 9851234567 immediately. " +
		"Visit www.lucky-draw.com today before the offer expires."

	score, keywords, explanation := AnalyzeText(text)

	assert.Equal(t, maxAnalysisScore, score)
	assert.Contains(t, keywords, "multiple phone numbers")
	assert.Contains(t, keywords, "contains link")
	assert.Contains(t, keywords, "urgency tactics")
	assert.LessOrEqual(t, len(keywords), maxShownKeywords)
	assert.Contains(t, explanation, "HIGH RISK")
}

func TestAnalyzeTextKeywordCountedOnce(t *testing.T) {
	// "winner" sits in both the high and low priority tiers; it must only
	// score once, at the higher weight
	score, keywords, _ := AnalyzeText("winner winner")

	count := 0
	for _, kw := range keywords {
		if kw == "winner" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.InDelta(t, highPriorityWeight, score, 0.001)
}

func TestAnalyzeTextSinglePhoneNumberNoBonus(t *testing.T) {
	_, keywords, _ := AnalyzeText("please reach 9841234567 for details")

	assert.NotContains(t, keywords, "multiple phone numbers")
}

func TestAnalyzeTextUrgencyNeedsTwoWords(t *testing.T) {
	_, keywords, _ := AnalyzeText("please respond today about the schedule")
	assert.NotContains(t, keywords, "urgency tactics")

	_, keywords, _ = AnalyzeText("respond today, this expires at midnight")
	assert.Contains(t, keywords, "urgency tactics")
}

func TestAnalyzeTextMalikKeyword(t *testing.T) {
	// "malik" is a common impersonation hook in local scam screenshots
	score, keywords, _ := AnalyzeText("Malik sir sent this, please check")

	assert.Contains(t, keywords, "malik")
	assert.InDelta(t, mediumPriorityWeight, score, 0.001)
}

func TestAnalyzeTextExplanationCountsAllMatches(t *testing.T) {
	// 21 distinct matches: the keyword list shown to the caller is capped
	// at maxShownKeywords, but the explanation keeps the full count
	text := "congratulations won winner prize lottery expired deposit withdraw " +
		"million crore lakh rupees otp khalti esewa bank password pin urgent"

	score, keywords, explanation := AnalyzeText(text)

	assert.Equal(t, maxAnalysisScore, score)
	assert.Len(t, keywords, maxShownKeywords)
	assert.Contains(t, explanation, "21 suspicious elements")
}
