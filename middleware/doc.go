// Package middleware provides net/http middleware for choice rendering.
//
// # Locale Middleware
//
// Locale negotiates the request's Accept-Language header against the locales
// a registry has plural rules for, and stores the result with i18n.WithLocale
// so selectors rendered with the request context use that locale:
//
//	import "github.com/dmitrymomot/choice/middleware"
//
//	mux.Handle("/", middleware.Locale(registry)(pageHandler))
//
//	// Advanced configuration
//	handler := middleware.LocaleWithConfig(middleware.LocaleConfig{
//		Registry:           registry,
//		LocaleExtractor:    middleware.LocaleFromQuery("lang", registry),
//		FallbackLocale:     "en",
//		SetContentLanguage: true,
//		Skip: func(r *http.Request) bool {
//			return strings.HasPrefix(r.URL.Path, "/static/")
//		},
//	})(pageHandler)
//
// When nothing matches, FallbackLocale is used, then the registry's current
// locale.
package middleware
