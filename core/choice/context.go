package choice

import "context"

type keywordContextKey struct{}

// WithKeyword returns a copy of ctx carrying the resolved keyword for nested matchers.
func WithKeyword(ctx context.Context, keyword string) context.Context {
	return context.WithValue(ctx, keywordContextKey{}, keyword)
}

// KeywordFromContext returns the keyword of the innermost enclosing selector.
func KeywordFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	keyword, ok := ctx.Value(keywordContextKey{}).(string)
	return keyword, ok
}
