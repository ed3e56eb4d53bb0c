package gotemplate_test

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/choice/core/choice"
	"github.com/dmitrymomot/choice/core/i18n"
	"github.com/dmitrymomot/choice/integration/gotemplate"
)

func newRegistry(t *testing.T, opts ...choice.RegistryOption) *choice.Registry {
	t.Helper()
	r, err := choice.NewRegistry(opts...)
	require.NoError(t, err)
	return r
}

func parseText(t *testing.T, src string, opts ...choice.SelectorOption) *template.Template {
	t.Helper()
	tmpl := template.New("page")
	tmpl.Funcs(gotemplate.TextFuncs(tmpl, append([]choice.SelectorOption{choice.WithRegistry(newRegistry(t))}, opts...)...))
	_, err := tmpl.Parse(src)
	require.NoError(t, err)
	return tmpl
}

func execText(t *testing.T, tmpl *template.Template, data any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func TestTextChoices(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "body"}}
	{{if choice . "foo"}}Choice foo{{end}}{{if choice . "bar"}}Choice bar{{end}}
{{end}}{{choose "body" . .x}}`)

	assert.Equal(t, "Choice foo", execText(t, tmpl, map[string]any{"x": "foo"}))
	assert.Equal(t, "Choice bar", execText(t, tmpl, map[string]any{"x": "bar"}))
	assert.Equal(t, "", execText(t, tmpl, map[string]any{"x": "baz"}))
}

func TestTextMultipleMatches(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "body"}}{{if choice . "a b c"}}1{{end}} {{if choice . "a"}}2{{end}} {{if choice . "a c"}}3{{end}}{{end}}{{choose "body" . .zone}}`)

	assert.Equal(t, "1 2 3", execText(t, tmpl, map[string]any{"zone": "a"}))
	assert.Equal(t, "1", execText(t, tmpl, map[string]any{"zone": "b"}))
	assert.Equal(t, "", execText(t, tmpl, map[string]any{"zone": "d"}))
}

func TestTextNumbersAndCallerData(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "ducks"}}{{.n}} {{if choice . "zero other"}}ducks{{end}}{{if choice . "one"}}duck{{end}}{{end}}{{choose "ducks" . .n}}`)

	assert.Equal(t, "0 ducks", execText(t, tmpl, map[string]any{"n": 0}))
	assert.Equal(t, "1 duck", execText(t, tmpl, map[string]any{"n": 1}))
	assert.Equal(t, "2 ducks", execText(t, tmpl, map[string]any{"n": 2}))
}

func TestTextShortcuts(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "fallback"}} Fallback option {{end}}{{choose "fallback" . .x "foo" "Option Foo" "bar" "Option Bar"}}|{{choose "" . .x "foo" "Option Foo"}}`)

	assert.Equal(t, "Option Foo|Option Foo", execText(t, tmpl, map[string]any{"x": "foo"}))
	assert.Equal(t, "Option Bar|", execText(t, tmpl, map[string]any{"x": "bar"}))
	assert.Equal(t, "Fallback option|", execText(t, tmpl, map[string]any{"x": "baz"}))
}

func TestTextBooleanType(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "b"}}{{if choice . "true"}}T{{end}}{{if choice . "false"}}F{{end}}{{end}}{{choose "b" . .x "type" "boolean"}}`)

	assert.Equal(t, "T", execText(t, tmpl, map[string]any{"x": true}))
	assert.Equal(t, "F", execText(t, tmpl, map[string]any{"x": "true"}))
	assert.Equal(t, "F", execText(t, tmpl, map[string]any{"x": 1}))
}

func TestTextFunctions(t *testing.T) {
	t.Parallel()

	fn := choice.KeywordFunc(func(opts choice.Options, args ...any) string {
		x := opts["x"]
		if len(args) == 1 {
			x = args[0]
		}
		if n, ok := x.(int); ok && n < 10 {
			return "a"
		}
		return "b"
	})

	tmpl := parseText(t, `{{define "ab"}}{{if choice . "a"}}Choice a{{end}}{{if choice . "b"}}Choice b{{end}}{{end}}`+
		`{{choose "ab" . .fn "x" .x}}|{{choose "ab" . .x "function" .fn}}|{{chooseOpts "ab" . "x" .x "function" .fn}}`)

	assert.Equal(t, "Choice a|Choice a|Choice a", execText(t, tmpl, map[string]any{"fn": fn, "x": 1}))
	assert.Equal(t, "Choice b|Choice b|Choice b", execText(t, tmpl, map[string]any{"fn": fn, "x": 10}))
}

func TestTextTrimDisabled(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "b"}} x {{end}}[{{choose "b" . .v "trim" false}}]`)
	assert.Equal(t, "[ x ]", execText(t, tmpl, map[string]any{"v": "k"}))
}

func TestTextLocale(t *testing.T) {
	t.Parallel()

	tmpl := template.New("page")
	tmpl.Funcs(gotemplate.TextFuncs(tmpl, choice.WithRegistry(newRegistry(t, choice.WithPluralRules("pl")))))
	_, err := tmpl.Parse(`{{define "f"}}{{.n}} {{if choice . "one"}}plik{{end}}{{if choice . "few"}}pliki{{end}}{{if choice . "many other"}}plików{{end}}{{end}}{{choose "f" . .n}}`)
	require.NoError(t, err)

	ctx := i18n.WithLocale(context.Background(), "pl")
	assert.Equal(t, "3 pliki", execText(t, tmpl, gotemplate.NewScope(ctx, map[string]any{"n": 3})))
	assert.Equal(t, "5 plików", execText(t, tmpl, gotemplate.NewScope(ctx, map[string]any{"n": 5})))
	assert.Equal(t, "3 plików", execText(t, tmpl, map[string]any{"n": 3}))
}

func TestTextStructData(t *testing.T) {
	t.Parallel()

	type page struct{ Count int }
	tmpl := parseText(t, `{{define "c"}}{{.Data.Count}} {{if choice . "one"}}item{{else}}items{{end}}{{end}}{{choose "c" . .Count}}`)
	assert.Equal(t, "1 item", execText(t, tmpl, page{Count: 1}))
	assert.Equal(t, "4 items", execText(t, tmpl, page{Count: 4}))
}

func TestTextNested(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{define "inner"}}{{if choice . "one"}}[one]{{end}}{{end}}`+
		`{{define "outer"}}{{if choice . "a"}}A{{choose "inner" . .n}}{{end}}{{if choice . "a"}}A{{end}}{{end}}`+
		`{{choose "outer" . .k}}`)

	assert.Equal(t, "A[one]A", execText(t, tmpl, map[string]any{"k": "a", "n": 1}))
}

func TestTextErrors(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{choose "" . .x "odd"}}`)
	assert.Error(t, tmpl.Execute(&bytes.Buffer{}, map[string]any{"x": "a"}))

	tmpl = parseText(t, `{{define "b"}}{{if choice . 42}}x{{end}}{{end}}{{choose "b" . .x}}`)
	assert.Error(t, tmpl.Execute(&bytes.Buffer{}, map[string]any{"x": "a"}))
}

func TestChooseKeyword(t *testing.T) {
	t.Parallel()

	tmpl := parseText(t, `{{chooseKeyword . .n}}/{{chooseKeyword . .b}}/{{chooseKeyword . .s "type" "boolean"}}`)
	assert.Equal(t, "other/true/false", execText(t, tmpl, map[string]any{"n": 7, "b": true, "s": "true"}))
}

func TestChooseKeywordLocale(t *testing.T) {
	t.Parallel()

	tmpl := template.New("page")
	tmpl.Funcs(gotemplate.TextFuncs(tmpl, choice.WithRegistry(newRegistry(t, choice.WithPluralRules("pl")))))
	_, err := tmpl.Parse(`{{chooseKeyword . .n}}|{{choose "" . .n "few" "few" "other" "other"}}`)
	require.NoError(t, err)

	ctx := i18n.WithLocale(context.Background(), "pl")
	assert.Equal(t, "few|few", execText(t, tmpl, gotemplate.NewScope(ctx, map[string]any{"n": 3})))
	assert.Equal(t, "other|other", execText(t, tmpl, map[string]any{"n": 3}))
}

func TestHTMLFuncs(t *testing.T) {
	t.Parallel()

	tmpl := htmltemplate.New("page")
	tmpl.Funcs(gotemplate.HTMLFuncs(tmpl, choice.WithRegistry(newRegistry(t))))
	_, err := tmpl.Parse(`{{define "body"}}{{if choice . "one"}}<b>{{.name}}</b>{{end}}{{end}}<p>{{choose "body" . .n "other" "<i>many</i>"}}</p>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, map[string]any{"n": 1, "name": "<x>"}))
	assert.Equal(t, "<p><b>&lt;x&gt;</b></p>", buf.String())

	buf.Reset()
	require.NoError(t, tmpl.Execute(&buf, map[string]any{"n": 2, "name": "x"}))
	assert.Equal(t, "<p>&lt;i&gt;many&lt;/i&gt;</p>", buf.String())
}

func TestMatchAndScope(t *testing.T) {
	t.Parallel()

	ok, err := gotemplate.Match(map[string]any{gotemplate.KeywordKey: "a"}, "a b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gotemplate.Match(map[string]any{}, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gotemplate.Match("not a map", []string{"a"})
	require.NoError(t, err)
	assert.False(t, ok)

	scope := gotemplate.NewScope(context.Background(), map[string]any{"x": 1})
	_, has := scope[gotemplate.LocaleKey]
	assert.False(t, has)
	assert.Equal(t, 1, scope["x"])
}
