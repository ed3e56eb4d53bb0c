package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralRule maps an integer count to a plural category keyword.
type PluralRule func(n int) string

// Plural category keywords as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// SimplePluralRule is the zero/one/other mapping used as the process-wide
// default. Only exact 0 and 1 are special; negative numbers fall into "other".
var SimplePluralRule PluralRule = func(n int) string {
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	default:
		return PluralOther
	}
}

// DefaultPluralRule distinguishes zero, one, few, many and other for languages
// without a dedicated rule.
var DefaultPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}

	absN := abs(n)
	if absN == 1 {
		return PluralOne
	}
	if absN >= 2 && absN <= 4 {
		return PluralFew
	}
	if absN > 4 && absN < 20 {
		return PluralMany
	}
	return PluralOther
}

// EnglishPluralRule: zero (0), one (1), other.
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule covers Polish, Czech, Ukrainian, Croatian, Serbian and relatives.
// Categories: zero, one, few, many.
var SlavicPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}

	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	// 2-4 except the teens
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}

	return PluralMany
}

// RomancePluralRule covers French, Italian and Portuguese.
// Categories: one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SpanishPluralRule: one (1), many (1,000,000+), other.
var SpanishPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// GermanicPluralRule covers German, Dutch and the Scandinavian languages.
// Categories: one (1), other (including 0).
var GermanicPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// AsianPluralRule is used by languages without grammatical plural.
var AsianPluralRule PluralRule = func(int) string {
	return PluralOther
}

// ArabicPluralRule: zero, one, two, few, many, other.
var ArabicPluralRule PluralRule = func(n int) string {
	switch n {
	case 0:
		return PluralZero
	case 1, -1:
		return PluralOne
	case 2, -2:
		return PluralTwo
	}

	mod100 := abs(n) % 100
	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}
	if mod100 >= 11 && mod100 <= 99 {
		return PluralMany
	}
	return PluralOther
}

// PluralRuleForLanguage returns the hand-written rule for the base language of
// a locale identifier ("pl", "pl-PL", "en_GB"). Unknown or unparsable locales
// get DefaultPluralRule.
func PluralRuleForLanguage(locale string) PluralRule {
	switch BaseLanguage(locale) {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "nb", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

// CLDRPluralRule returns a rule backed by the CLDR cardinal plural data shipped
// with golang.org/x/text. Unlike SimplePluralRule, English 0 maps to "other".
func CLDRPluralRule(locale string) PluralRule {
	tag := language.Make(normalizeLocale(locale))
	return func(n int) string {
		return formKeyword(plural.Cardinal.MatchPlural(tag, abs(n), 0, 0, 0, 0))
	}
}

func formKeyword(f plural.Form) string {
	switch f {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
