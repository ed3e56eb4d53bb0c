// Package gotemplate binds choice selection to text/template and html/template.
//
// Go templates have no block helpers, so a selector body is a named template
// and matchers are boolean functions used with {{if}}:
//
//	t := template.New("page")
//	t.Funcs(gotemplate.TextFuncs(t))
//	template.Must(t.Parse(`
//	{{define "ducks"}}
//		{{.count}}
//		{{if choice . "zero other"}}ducks{{end}}
//		{{if choice . "one"}}duck{{end}}
//	{{end}}
//	{{choose "ducks" . .count}}`))
//
// Functions:
//
//	choose NAME DOT VALUE [KEY VALUE]...   selector with a positional value or KeywordFunc
//	chooseOpts NAME DOT [KEY VALUE]...     selector without a positional value
//	choice DOT LABELS                      true when the ambient keyword is in LABELS
//	chooseKeyword DOT VALUE [KEY VALUE]... the resolved keyword itself
//
// NAME may be "" when only attribute shortcuts are used. The body template
// receives a Scope: a copy of the caller's map data (or the caller's data
// under "Data" when it is not a map) plus the keyword under KeywordKey.
// A string under LocaleKey in the caller's data selects the plural locale.
package gotemplate

import (
	"context"
	"html/template"
	"io"
	"maps"

	"github.com/dmitrymomot/choice/core/cache"
	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
)

// Keys of the ambient Scope handed to body templates.
const (
	KeywordKey = "ChoiceKeyword"
	LocaleKey  = "ChoiceLocale"
	DataKey    = "Data"
)

// Executor is satisfied by *text/template.Template and *html/template.Template.
type Executor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// Scope is the data passed to selector body templates.
type Scope map[string]any

// NewScope copies data and records the locale stored in ctx by i18n.WithLocale.
func NewScope(ctx context.Context, data map[string]any) Scope {
	scope := make(Scope, len(data)+1)
	maps.Copy(scope, data)
	if locale, ok := i18n.LocaleFromContext(ctx); ok {
		scope[LocaleKey] = locale
	}
	return scope
}

// KeywordOf returns the ambient keyword of a body template's dot.
func KeywordOf(dot any) (string, bool) {
	m, ok := asMap(dot)
	if !ok {
		return "", false
	}
	keyword, ok := m[KeywordKey].(string)
	return keyword, ok
}

// TextFuncs returns the template functions for a text/template set.
// exec is usually the template the functions are registered on.
func TextFuncs(exec Executor, opts ...choice.SelectorOption) map[string]any {
	b := &binding{selector: choice.NewSelector(opts...), exec: exec}
	return map[string]any{
		"choose":        b.choose,
		"chooseOpts":    b.chooseOpts,
		"choice":        Match,
		"chooseKeyword": b.keyword,
	}
}

// HTMLFuncs returns the template functions for an html/template set.
// Selector output is returned as template.HTML; attribute shortcut values are
// HTML-escaped, body templates are escaped by html/template itself.
func HTMLFuncs(exec Executor, opts ...choice.SelectorOption) map[string]any {
	opts = append([]choice.SelectorOption{choice.WithEscaper(template.HTMLEscapeString)}, opts...)
	b := &binding{selector: choice.NewSelector(opts...), exec: exec}
	return map[string]any{
		"choose": func(name string, dot, value any, pairs ...any) (template.HTML, error) {
			out, err := b.choose(name, dot, value, pairs...)
			return template.HTML(out), err
		},
		"chooseOpts": func(name string, dot any, pairs ...any) (template.HTML, error) {
			out, err := b.chooseOpts(name, dot, pairs...)
			return template.HTML(out), err
		},
		"choice":        Match,
		"chooseKeyword": b.keyword,
	}
}

// labelCache holds parsed string label specs; templates repeat the same few.
var labelCache = cache.NewLRUCache[string, choice.Labels](512)

// Match reports whether the ambient keyword of dot is one of the labels in spec.
func Match(dot any, spec any) (bool, error) {
	labels, err := parseLabels(spec)
	if err != nil {
		return false, err
	}
	keyword, ok := KeywordOf(dot)
	return ok && choice.Matches(keyword, labels), nil
}

func parseLabels(spec any) (choice.Labels, error) {
	s, ok := spec.(string)
	if !ok {
		return choice.ParseLabels(spec)
	}
	if labels, ok := labelCache.Get(s); ok {
		return labels, nil
	}
	labels, err := choice.ParseLabels(s)
	if err != nil {
		return nil, err
	}
	labelCache.Put(s, labels)
	return labels, nil
}

type binding struct {
	selector *choice.Selector
	exec     Executor
}

func (b *binding) choose(name string, dot, value any, pairs ...any) (string, error) {
	opts, err := choice.OptionsFromPairs(pairs...)
	if err != nil {
		return "", err
	}
	return b.run(name, dot, choice.From(value), opts)
}

func (b *binding) chooseOpts(name string, dot any, pairs ...any) (string, error) {
	opts, err := choice.OptionsFromPairs(pairs...)
	if err != nil {
		return "", err
	}
	return b.run(name, dot, choice.Input{}, opts)
}

func (b *binding) keyword(dot, value any, pairs ...any) (string, error) {
	opts, err := choice.OptionsFromPairs(pairs...)
	if err != nil {
		return "", err
	}
	return choice.NewResolver(b.selector.Registry()).Resolve(contextOf(dot), choice.From(value), opts)
}

func (b *binding) run(name string, dot any, in choice.Input, opts choice.Options) (string, error) {
	ctx := contextOf(dot)

	var body choice.Body
	if name != "" {
		body = choice.BodyFunc(func(ctx context.Context, w io.Writer) error {
			keyword, _ := choice.KeywordFromContext(ctx)
			return b.exec.ExecuteTemplate(w, name, extend(dot, keyword))
		})
	}
	return b.selector.Select(ctx, in, opts, body)
}

// contextOf carries the LocaleKey of dot, if any, into a fresh context.
func contextOf(dot any) context.Context {
	ctx := context.Background()
	if m, ok := asMap(dot); ok {
		if locale, ok := m[LocaleKey].(string); ok {
			ctx = i18n.WithLocale(ctx, locale)
		}
	}
	return ctx
}

// extend builds the body's dot without touching the caller's data.
func extend(dot any, keyword string) Scope {
	var scope Scope
	if m, ok := asMap(dot); ok {
		scope = make(Scope, len(m)+1)
		maps.Copy(scope, m)
	} else {
		scope = Scope{}
		if dot != nil {
			scope[DataKey] = dot
		}
	}
	scope[KeywordKey] = keyword
	return scope
}

func asMap(dot any) (map[string]any, bool) {
	switch m := dot.(type) {
	case Scope:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}
