package practice

import (
	"regexp"
	"strings"
)

var alternativeSeparator = regexp.MustCompile(`,|\bor\b`)

// normalizeAnswer lowercases and keeps only ASCII letters and digits.
func normalizeAnswer(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CompareAnswers reports whether a free-text answer matches the canonical
// one. Canonical answers may list alternatives separated by commas or the
// word "or"; an alternative matches when either normalized string contains
// the other.
func CompareAnswers(user, canonical string) bool {
	normalizedUser := normalizeAnswer(user)
	if normalizedUser == "" {
		return false
	}
	if normalizedUser == normalizeAnswer(canonical) {
		return true
	}
	for _, alternative := range alternativeSeparator.Split(strings.ToLower(canonical), -1) {
		normalized := normalizeAnswer(alternative)
		if normalized == "" {
			continue
		}
		if strings.Contains(normalizedUser, normalized) || strings.Contains(normalized, normalizedUser) {
			return true
		}
	}
	return false
}
