package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocalTenDigitNumber(t *testing.T) {
	assert.Equal(t, "+9779841234567", Normalize("9841234567"))
	assert.Equal(t, "+9779841234567", Normalize("984-123-4567"))
	assert.Equal(t, "+9779841234567", Normalize("(984) 123 4567"))
}

func TestNormalizeCountryCodeWithoutPlus(t *testing.T) {
	assert.Equal(t, "+9779841234567", Normalize("9779841234567"))
	assert.Equal(t, "+9779841234567", Normalize("977 984 1234567"))
}

func TestNormalizeCanonicalInputUnchanged(t *testing.T) {
	assert.Equal(t, "+9779841234567", Normalize("+9779841234567"))
}

func TestNormalizeFallback(t *testing.T) {
	// Irregular lengths fall through to best-effort +digits
	assert.Equal(t, "+123", Normalize("123"))
	assert.Equal(t, "+14155552671", Normalize("+1 415 555 2671"))
	assert.Equal(t, "+", Normalize("garbage"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"9841234567", "9779841234567", "+9779841234567", "123", "+1 415 555 2671", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestScoreBounds(t *testing.T) {
	messages := []string{
		"",
		"hi",
		"otp khalti esewa bank prize reward verify blocked",
		strings.Repeat("otp bank verify prize ", 200),
	}
	for _, msg := range messages {
		score := Score(msg)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, MaxScore)
	}
}

func TestScoreKeywordHits(t *testing.T) {
	// 3 keyword hits (otp, bank, verify): 0.45 from keywords plus length weight
	msg := "Your OTP is required, bank verify now"
	expected := float64(len(msg))/200 + 0.45
	assert.InDelta(t, expected, Score(msg), 1e-9)
}

func TestScoreKeywordContributionCapped(t *testing.T) {
	// All 8 keywords would add 1.2 uncapped; keyword term caps at 0.6
	msg := "otp khalti esewa bank prize reward verify blocked"
	expected := float64(len(msg))/200 + 0.6
	assert.InDelta(t, expected, Score(msg), 1e-9)
}

func TestScoreLengthWeightCapped(t *testing.T) {
	// No keywords, very long message: length term caps at 0.3
	msg := strings.Repeat("x", 1000)
	assert.InDelta(t, 0.3, Score(msg), 1e-9)
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("OTP BANK VERIFY"), Score("otp bank verify"))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelLow, LevelFor(0))
	assert.Equal(t, LevelLow, LevelFor(0.33))
	assert.Equal(t, LevelMedium, LevelFor(0.34))
	assert.Equal(t, LevelMedium, LevelFor(0.66))
	assert.Equal(t, LevelHigh, LevelFor(0.67))
	assert.Equal(t, LevelHigh, LevelFor(0.99))
}
