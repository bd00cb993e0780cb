package scoring

import "strings"

// countryCode is the national dialing code assumed for bare 10-digit
// subscriber numbers (Nepal).
const countryCode = "977"

// Normalize canonicalizes a raw phone-number string into a +-prefixed digit
// string used as the join key across all reports for one subscriber.
//
// Normalization never fails: malformed input falls through to a best-effort
// "+digits" form rather than being rejected, so a possibly-wrong canonical
// form is stored instead of losing the report.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// Bare 10-digit local subscriber number
	if len(digits) == 10 {
		return "+" + countryCode + digits
	}

	// Country code included without the plus
	if strings.HasPrefix(digits, countryCode) && len(digits) == 13 {
		return "+" + digits
	}

	// Already canonical
	if strings.HasPrefix(raw, "+"+countryCode) && len(raw) == 14 {
		return raw
	}

	return "+" + digits
}
