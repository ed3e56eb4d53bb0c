package middleware

import (
	"net/http"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
)

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Registry supplies the locales that can be negotiated (default: choice.Default())
	Registry *choice.Registry
	// LocaleExtractor defines how to extract the locale from the request
	// Default: negotiates the Accept-Language header against Registry.Locales()
	LocaleExtractor func(r *http.Request) string
	// FallbackLocale is used when extraction yields nothing
	// Default: the registry's current locale
	FallbackLocale string
	// SetContentLanguage writes the chosen locale to the Content-Language header
	SetContentLanguage bool
}

// Locale creates a locale middleware with default configuration.
// Selectors rendered with the request context use the negotiated locale's
// plural rule.
func Locale(registry *choice.Registry) func(http.Handler) http.Handler {
	return LocaleWithConfig(LocaleConfig{Registry: registry})
}

// LocaleWithConfig creates a locale middleware with custom configuration.
func LocaleWithConfig(cfg LocaleConfig) func(http.Handler) http.Handler {
	if cfg.Registry == nil {
		cfg.Registry = choice.Default()
	}

	if cfg.LocaleExtractor == nil {
		cfg.LocaleExtractor = func(r *http.Request) string {
			locale, _ := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), cfg.Registry.Locales())
			return locale
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			locale := cfg.LocaleExtractor(r)
			if locale == "" {
				locale = cfg.FallbackLocale
			}
			if locale == "" {
				locale = cfg.Registry.Locale()
			}

			if cfg.SetContentLanguage && locale != choice.DefaultLocale {
				w.Header().Set("Content-Language", locale)
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
		})
	}
}

// LocaleFromQuery returns an extractor reading the locale from a query parameter,
// falling back to the Accept-Language negotiation of registry.
func LocaleFromQuery(param string, registry *choice.Registry) func(r *http.Request) string {
	if registry == nil {
		registry = choice.Default()
	}
	return func(r *http.Request) string {
		if v := r.URL.Query().Get(param); v != "" {
			if registry.Has(v, choice.PluralRuleName) {
				return v
			}
		}
		locale, _ := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), registry.Locales())
		return locale
	}
}
