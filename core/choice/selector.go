package choice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/choice/core/logger"
)

// Body renders block content into w. templ.Component satisfies it.
type Body interface {
	Render(ctx context.Context, w io.Writer) error
}

// BodyFunc adapts a function to Body.
type BodyFunc func(ctx context.Context, w io.Writer) error

// Render implements Body.
func (f BodyFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Text is a Body that writes a fixed string.
type Text string

// Render implements Body.
func (t Text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

// Selector runs selector invocations: it resolves a keyword, tries the
// attribute shortcuts, and otherwise renders the body with the keyword in
// its context.
type Selector struct {
	resolver *Resolver
	logger   *slog.Logger
	escape   func(string) string
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithRegistry sets the registry used for numeric resolution.
func WithRegistry(registry *Registry) SelectorOption {
	return func(s *Selector) {
		s.resolver = NewResolver(registry)
	}
}

// WithLogger sets the logger. Resolutions are logged at debug level.
func WithLogger(l *slog.Logger) SelectorOption {
	return func(s *Selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEscaper sets a function applied to attribute shortcut values before
// they are emitted. Hosts producing HTML install their escaper here.
func WithEscaper(escape func(string) string) SelectorOption {
	return func(s *Selector) {
		s.escape = escape
	}
}

// NewSelector creates a Selector. Without options it uses the default
// registry, a discarding logger and no escaping.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = NewResolver(nil)
	}
	return s
}

// Registry returns the registry numeric values are resolved against.
func (s *Selector) Registry() *Registry {
	return s.resolver.Registry()
}

// Select performs one selector invocation and returns its output.
//
// When opts holds a non-reserved key equal to the keyword, that value is the
// output and body is not rendered. Otherwise body is rendered with a context
// carrying the keyword; nested When/MatchLabel blocks read it from there.
// Unless opts["trim"] is false, the combined output is trimmed once. A nil
// body renders nothing.
func (s *Selector) Select(ctx context.Context, in Input, opts Options, body Body) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	keyword, err := s.resolver.Resolve(ctx, in, opts)
	if err != nil {
		s.logger.WarnContext(ctx, "choice keyword resolution failed",
			logger.Component("choice"),
			logger.Error(err),
		)
		return "", err
	}

	var out string
	if shortcut, ok := opts.Shortcut(keyword); ok {
		s.logger.DebugContext(ctx, "choice resolved",
			logger.Keyword(keyword),
			logger.Event("shortcut"),
		)
		if s.escape != nil {
			shortcut = s.escape(shortcut)
		}
		out = shortcut
	} else if body != nil {
		s.logger.DebugContext(ctx, "choice resolved",
			logger.Keyword(keyword),
			logger.Event("body"),
		)
		var buf bytes.Buffer
		if err := body.Render(WithKeyword(ctx, keyword), &buf); err != nil {
			return "", fmt.Errorf("choice: render body: %w", err)
		}
		out = buf.String()
	}

	if opts.Trim() {
		out = strings.TrimSpace(out)
	}
	return out, nil
}

// Choose returns a Body performing Select when rendered, for use as a
// component inside a host engine.
func (s *Selector) Choose(in Input, opts Options, body Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		out, err := s.Select(ctx, in, opts, body)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// MatchLabel is the matcher side: it renders body when the keyword of the
// enclosing selector is one of labels, and returns "" otherwise. Outside any
// selector nothing matches.
func MatchLabel(ctx context.Context, labels Labels, body Body) (string, error) {
	keyword, ok := KeywordFromContext(ctx)
	if !ok || !Matches(keyword, labels) || body == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := body.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("choice: render %q: %w", labels.String(), err)
	}
	return buf.String(), nil
}

// When returns a Body that renders body only when the enclosing selector's
// keyword is one of labels. Sibling When blocks are independent, so
// overlapping label sets all render, in document order.
func When(labels Labels, body Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		keyword, ok := KeywordFromContext(ctx)
		if !ok || !Matches(keyword, labels) || body == nil {
			return nil
		}
		return body.Render(ctx, w)
	})
}

// Seq renders parts in order, like a block body mixing static text and matchers.
func Seq(parts ...Body) Body {
	return BodyFunc(func(ctx context.Context, w io.Writer) error {
		for _, part := range parts {
			if part == nil {
				continue
			}
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Select performs a selector invocation against the default registry.
func Select(ctx context.Context, in Input, opts Options, body Body) (string, error) {
	return NewSelector().Select(ctx, in, opts, body)
}
