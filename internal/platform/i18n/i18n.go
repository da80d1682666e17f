// Package i18n exposes the supported language tags and request-independent
// matching used by every user-facing surface.
package i18n

import (
	"strings"

	"github.com/louisbranch/numerals.space/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{
		language.MustParse(catalog.BaseLocale),
		language.MustParse("es-ES"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the languages with a catalog, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it matches a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// Locale returns the catalog locale identifier for tag.
func Locale(tag language.Tag) string {
	matched, ok := ParseTag(tag.String())
	if !ok {
		return catalog.BaseLocale
	}
	return matched.String()
}
