package choice

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/choice/core/i18n"
)

// Keywords produced for boolean values.
const (
	KeywordTrue  = "true"
	KeywordFalse = "false"
)

// KeywordFunc is a caller-supplied resolver. It receives the selector options
// and, when the selector has a positional value, that value as the single
// element of args. With no positional value the function reads whatever it
// needs from opts. The returned string is used verbatim.
type KeywordFunc func(opts Options, args ...any) string

type inputKind uint8

const (
	inputNone inputKind = iota
	inputValue
	inputFunc
)

// Input is the positional argument of a selector: nothing, a plain value, or
// a resolver function. The zero Input means no positional argument.
type Input struct {
	kind  inputKind
	value any
	fn    KeywordFunc
}

// Value wraps a plain value.
func Value(v any) Input {
	return Input{kind: inputValue, value: v}
}

// Func wraps a resolver function. A nil fn yields the zero Input.
func Func(fn KeywordFunc) Input {
	if fn == nil {
		return Input{}
	}
	return Input{kind: inputFunc, fn: fn}
}

// From discriminates an untyped argument coming from a template engine:
// keyword functions become Func inputs, everything else a Value.
func From(v any) Input {
	if fn, ok := asKeywordFunc(v); ok {
		return Func(fn)
	}
	return Value(v)
}

// IsZero reports whether no positional argument was supplied.
func (in Input) IsZero() bool {
	return in.kind == inputNone
}

func asKeywordFunc(v any) (KeywordFunc, bool) {
	switch fn := v.(type) {
	case KeywordFunc:
		return fn, fn != nil
	case func(Options, ...any) string:
		return fn, fn != nil
	case func(Options) string:
		if fn == nil {
			return nil, false
		}
		return func(opts Options, _ ...any) string { return fn(opts) }, true
	}
	return nil, false
}

// Resolver turns a selector input into a keyword.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a Resolver backed by registry. A nil registry means Default().
func NewResolver(registry *Registry) *Resolver {
	if registry == nil {
		registry = Default()
	}
	return &Resolver{registry: registry}
}

// Registry returns the registry numeric values are resolved against.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve derives the keyword for in. First match wins:
//
//  1. a resolver function, positional or under the "function" option; a nil
//     positional value counts as absent, so the function gets only opts
//  2. the "type" option set to "boolean"
//  3. a boolean value
//  4. a numeric value, via the locale's plural rule
//  5. any other value, used as the keyword itself
//
// The locale for rule 4 is the one stored in ctx by i18n.WithLocale, or the
// registry's current locale.
func (r *Resolver) Resolve(ctx context.Context, in Input, opts Options) (string, error) {
	fn, err := opts.Function()
	if err != nil {
		return "", err
	}
	typ, err := opts.Type()
	if err != nil {
		return "", err
	}

	switch {
	case in.kind == inputFunc && fn != nil:
		return "", ErrConflictingResolver
	case in.kind == inputFunc:
		return in.fn(opts), nil
	case fn != nil && in.kind == inputValue && in.value != nil:
		return fn(opts, in.value), nil
	case fn != nil:
		return fn(opts), nil
	case typ == TypeBoolean:
		return boolKeyword(in.value), nil
	}

	rv := reflect.ValueOf(in.value)
	if in.value != nil && rv.Kind() == reflect.Bool {
		return boolKeyword(in.value), nil
	}
	if _, ok := toFloat(in.value); ok {
		return r.plural(ctx, in.value)
	}
	return plainKeyword(in.value), nil
}

func (r *Resolver) plural(ctx context.Context, value any) (string, error) {
	locale, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		locale = r.registry.Locale()
	}
	rule, ok := r.registry.Lookup(locale, PluralRuleName)
	if !ok {
		return "", fmt.Errorf("%w: %q for locale %q", ErrRuleNotFound, PluralRuleName, locale)
	}
	return rule(value), nil
}

// boolKeyword yields "true" only for a value identical to boolean true.
func boolKeyword(value any) string {
	if value == nil {
		return KeywordFalse
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Bool && rv.Bool() {
		return KeywordTrue
	}
	return KeywordFalse
}

func plainKeyword(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(value)
}

// Resolve derives a keyword using the default registry.
func Resolve(ctx context.Context, in Input, opts Options) (string, error) {
	return NewResolver(nil).Resolve(ctx, in, opts)
}
