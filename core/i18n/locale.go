package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

type localeContextKey struct{}

// WithLocale returns a copy of ctx carrying locale. An empty locale leaves ctx unchanged.
func WithLocale(ctx context.Context, locale string) context.Context {
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// ParseAcceptLanguage picks the best entry of available for an Accept-Language
// header. Quality values are honoured and partial matches ("en-US" for "en")
// are accepted. Entries of available that are not language tags (for example
// "default") are never matched. If nothing matches, available[0] is returned;
// an empty available list yields "".
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if locale, ok := MatchAcceptLanguage(header, available); ok {
		return locale
	}
	return available[0]
}

// MatchAcceptLanguage is ParseAcceptLanguage without the fallback: ok is
// false when the header is empty or invalid, or no entry of available matches.
func MatchAcceptLanguage(header string, available []string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || len(available) == 0 {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	// The matcher only knows about parsable tags; keep a map back to the
	// caller's spelling of each one.
	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, avail := range available {
		tag, err := language.Parse(normalizeLocale(avail))
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, i)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, matched, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return "", false
	}
	return available[index[matched]], true
}

// BaseLanguage returns the lowercase ISO 639 base of a locale identifier, or
// the lowercased input when it does not parse as a language tag.
func BaseLanguage(locale string) string {
	normalized := normalizeLocale(locale)
	tag, err := language.Parse(normalized)
	if err != nil {
		return strings.ToLower(normalized)
	}
	base, _ := tag.Base()
	return base.String()
}

// normalizeLocale accepts POSIX-style identifiers such as "pt_BR".
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
