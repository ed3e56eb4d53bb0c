package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
	"github.com/dmitrymomot/choice/middleware"
)

func newRegistry(t *testing.T, opts ...choice.RegistryOption) *choice.Registry {
	t.Helper()
	r, err := choice.NewRegistry(opts...)
	require.NoError(t, err)
	return r
}

// serve runs the middleware and returns the locale seen by the handler.
func serve(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = i18n.LocaleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestLocale(t *testing.T) {
	t.Parallel()

	registry := newRegistry(t, choice.WithPluralRules("pl", "de"))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "exact match", header: "pl", want: "pl"},
		{name: "regional variant", header: "de-AT,de;q=0.9", want: "de"},
		{name: "quality order", header: "fr;q=0.9,pl;q=0.5,en;q=0.8", want: "en"},
		{name: "no header", header: "", want: "default"},
		{name: "unsupported language", header: "ja", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			got, rec := serve(t, middleware.Locale(registry), req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocaleFallbackToCurrentLocale(t *testing.T) {
	t.Parallel()

	registry := newRegistry(t, choice.WithPluralRules("pl", "de"), choice.WithLocale("pl"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja")
	got, _ := serve(t, middleware.Locale(registry), req)
	assert.Equal(t, "pl", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	got, _ = serve(t, middleware.Locale(registry), req)
	assert.Equal(t, "pl", got)
}

func TestLocaleWithConfig(t *testing.T) {
	t.Parallel()

	registry := newRegistry(t, choice.WithPluralRules("pl"))

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			Registry: registry,
			Skip:     func(r *http.Request) bool { return r.URL.Path == "/health" },
		})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Accept-Language", "pl")
		got, _ := serve(t, mw, req)
		assert.Empty(t, got)
	})

	t.Run("fallback and content language", func(t *testing.T) {
		t.Parallel()

		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			Registry:           registry,
			LocaleExtractor:    func(*http.Request) string { return "" },
			FallbackLocale:     "pl",
			SetContentLanguage: true,
		})
		got, rec := serve(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "pl", got)
		assert.Equal(t, "pl", rec.Header().Get("Content-Language"))
	})

	t.Run("query parameter", func(t *testing.T) {
		t.Parallel()

		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			Registry:        registry,
			LocaleExtractor: middleware.LocaleFromQuery("lang", registry),
		})

		got, _ := serve(t, mw, httptest.NewRequest(http.MethodGet, "/?lang=pl", nil))
		assert.Equal(t, "pl", got)

		req := httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
		req.Header.Set("Accept-Language", "en-GB")
		got, _ = serve(t, mw, req)
		assert.Equal(t, "en", got)
	})

	t.Run("unknown query locale is not trusted", func(t *testing.T) {
		t.Parallel()

		mw := middleware.LocaleWithConfig(middleware.LocaleConfig{
			Registry:           registry,
			LocaleExtractor:    middleware.LocaleFromQuery("lang", registry),
			SetContentLanguage: true,
		})

		req := httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
		got, rec := serve(t, mw, req)
		assert.Equal(t, choice.DefaultLocale, got)
		assert.Empty(t, rec.Header().Get("Content-Language"))

		req = httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
		req.Header.Set("Accept-Language", "pl-PL")
		got, rec = serve(t, mw, req)
		assert.Equal(t, "pl", got)
		assert.Equal(t, "pl", rec.Header().Get("Content-Language"))
	})
}

func TestLocaleDrivesSelector(t *testing.T) {
	t.Parallel()

	registry := newRegistry(t, choice.WithPluralRules("pl"))
	selector := choice.NewSelector(choice.WithRegistry(registry))

	var out string
	h := middleware.Locale(registry)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		out, err = selector.Select(r.Context(), choice.Value(3), choice.Options{"few": "pliki", "other": "plików"}, nil)
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pl-PL")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "pliki", out)
}
