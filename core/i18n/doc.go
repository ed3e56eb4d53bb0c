// Package i18n provides the locale plumbing used by choice selection: plural
// rules that map counts to category keywords, a per-request locale carried in
// context.Context, and Accept-Language negotiation.
//
// # Plural Rules
//
// A PluralRule maps an integer to one of the keywords zero, one, two, few,
// many or other. Hand-written rules cover the common language families:
//
//	rule := i18n.PluralRuleForLanguage("pl-PL")
//	rule(1)  // "one"
//	rule(3)  // "few"
//	rule(5)  // "many"
//
// CLDRPluralRule uses the Unicode CLDR cardinal rules from golang.org/x/text
// instead. Note that CLDR has no "zero" form for English, so 0 is "other".
//
// # Locale in Context
//
//	ctx = i18n.WithLocale(ctx, "pl")
//	locale, ok := i18n.LocaleFromContext(ctx)
//
// A locale stored this way overrides the registry's current locale for every
// selector rendered with ctx.
//
// # Accept-Language
//
//	locale := i18n.ParseAcceptLanguage("en-US,en;q=0.9,pl;q=0.8", []string{"pl", "en"})
//	// "en"
//
// MatchAcceptLanguage reports whether anything matched instead of falling
// back to the first available locale.
package i18n
