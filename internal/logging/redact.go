package logging

import "strings"

// secretKeyPatterns are substrings marking attribute keys whose values must
// not be logged. Matching is case-insensitive.
var secretKeyPatterns = []string{
	"PASSWORD",
	"PASSWD",
	"SECRET",
	"TOKEN",
	"API_KEY",
	"CREDENTIAL",
	"PRIVATE",
}

// ShouldMask reports whether values logged under key must be redacted.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, p := range secretKeyPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// MaskValue redacts value, keeping the last four characters of long values.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
