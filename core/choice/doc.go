// Package choice resolves a runtime value to a keyword and selects the
// content branches labelled with it, with plural and boolean inflection and
// per-locale keyword rules.
//
// A selection has two halves. The selector computes a keyword from its input
// and renders its body with the keyword stored in the context. Matchers
// nested anywhere in that body read the keyword back and render themselves
// only when it is one of their labels.
//
// # Basic Usage
//
//	body := choice.Seq(
//		choice.When(choice.MustLabels("zero other"), choice.Text("ducks")),
//		choice.When(choice.MustLabels("one"), choice.Text("duck")),
//	)
//
//	out, err := choice.Select(ctx, choice.Value(2), nil, body)
//	// out == "ducks"
//
// # Keyword Resolution
//
// The keyword comes from the first rule that applies:
//
//   - a KeywordFunc, passed positionally (choice.Func) or as the "function" option
//   - the "type" option set to "boolean": "true" only for boolean true
//   - a bool value: "true" or "false"
//   - a numeric value: the "getPluralKeyword" rule of the current locale
//   - anything else: the value itself, so precomputed keywords pass through
//
// Numbers never take the boolean path, so 0 and 1 resolve to "zero" and "one".
// Passing a resolver both positionally and as the "function" option is
// rejected with ErrConflictingResolver.
//
// # Attribute Shortcuts
//
// Non-reserved options double as labels. When one equals the keyword its
// value is the whole output and the body is not rendered:
//
//	out, _ := choice.Select(ctx, choice.Value("foo"), choice.Options{
//		"foo": "Option Foo",
//		"bar": "Option Bar",
//	}, choice.Text("Fallback option"))
//	// out == "Option Foo"
//
// The reserved options are "function", "type" and "trim". Output is trimmed
// unless "trim" is false.
//
// # Locales
//
// A Registry maps (locale, rule name) to a Rule. Lookups that miss fall back
// to the "default" locale. "default" and "en" start with a zero/one/other
// plural rule; language family and CLDR rules can be preloaded:
//
//	reg, err := choice.NewRegistry(
//		choice.WithCLDRPluralRules("pl", "ar"),
//		choice.WithLocale("pl"),
//	)
//	sel := choice.NewSelector(choice.WithRegistry(reg))
//
// The registry locale is process-wide. For per-request locales store the
// locale in the context with i18n.WithLocale; it overrides the registry
// locale for that render only.
//
// # Host Engines
//
// Body matches templ.Component, so templ components can be used directly as
// bodies. Bindings for templ and for text/template and html/template live in
// the integration packages.
package choice
