// Package redact masks secret-bearing fields in payloads before they are
// logged or displayed. It is a best-effort hygiene filter for logs, not a
// security boundary: values reachable under unrecognized key names pass
// through untouched.
package redact

import "strings"

// sensitiveTerms is the fixed vocabulary of key substrings that mark a
// string value as secret-bearing. Matching is case-insensitive.
var sensitiveTerms = []string{
	"api_key",
	"password",
	"token",
	"secret",
	"key",
	"credit_card",
	"ssn",
	"social_security",
	"account_number",
}

// Sanitize returns a copy of the payload with sensitive string values
// masked. The input is never mutated; nested maps are sanitized
// recursively. Non-string values and non-matching keys pass through
// unchanged.
func Sanitize(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}

	result := make(map[string]any, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case map[string]any:
			result[key] = Sanitize(v)
		case string:
			if sensitiveKey(key) {
				result[key] = Mask(v)
			} else {
				result[key] = v
			}
		default:
			result[key] = value
		}
	}
	return result
}

// Mask hides the middle of a secret value. Short values (4 chars or fewer)
// are fully masked; longer values keep their first and last two characters.
func Mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:2] + strings.Repeat("*", len(value)-4) + value[len(value)-2:]
}

func sensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, term := range sensitiveTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
