package choice

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"sync"

	"github.com/dmitrymomot/choice/core/i18n"
)

const (
	// DefaultLocale is the fallback locale every lookup ends at.
	DefaultLocale = "default"
	// PluralRuleName is the rule consulted for numeric values.
	PluralRuleName = "getPluralKeyword"
)

// Rule derives a keyword from a value.
type Rule func(value any) string

// Registry maps (locale, name) pairs to keyword rules and holds the current locale.
// It is safe for concurrent use; registration and locale changes take a write lock.
type Registry struct {
	mu     sync.RWMutex
	locale string
	rules  map[string]map[string]Rule
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry) error

// NewRegistry creates a registry with the built-in zero/one/other plural rule
// registered for "default" and "en", then applies opts.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		locale: DefaultLocale,
		rules:  make(map[string]map[string]Rule),
	}
	builtin := PluralRule(i18n.SimplePluralRule)
	r.set(DefaultLocale, PluralRuleName, builtin)
	r.set("en", PluralRuleName, builtin)

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

// WithLocale sets the initial current locale.
func WithLocale(locale string) RegistryOption {
	return func(r *Registry) error {
		if locale == "" {
			return fmt.Errorf("locale cannot be empty")
		}
		r.SetLocale(locale)
		return nil
	}
}

// WithRule registers fn under (locale, name).
func WithRule(locale, name string, fn Rule) RegistryOption {
	return func(r *Registry) error {
		return r.Register(locale, name, fn)
	}
}

// WithPluralRules registers the hand-written language family plural rule
// for each locale.
func WithPluralRules(locales ...string) RegistryOption {
	return func(r *Registry) error {
		for _, locale := range locales {
			if err := r.Register(locale, PluralRuleName, PluralRule(i18n.PluralRuleForLanguage(locale))); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithCLDRPluralRules registers CLDR cardinal plural rules for each locale.
func WithCLDRPluralRules(locales ...string) RegistryOption {
	return func(r *Registry) error {
		for _, locale := range locales {
			if err := r.Register(locale, PluralRuleName, PluralRule(i18n.CLDRPluralRule(locale))); err != nil {
				return err
			}
		}
		return nil
	}
}

// Register stores fn under (locale, name), replacing any previous rule.
// An empty locale means the current locale.
func (r *Registry) Register(locale, name string, fn Rule) error {
	if name == "" {
		return ErrEmptyRuleName
	}
	if fn == nil {
		return ErrNilRule
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if locale == "" {
		locale = r.locale
	}
	r.set(locale, name, fn)
	return nil
}

// Unregister removes the rule under (locale, name). Missing entries are ignored.
func (r *Registry) Unregister(locale, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if table, ok := r.rules[locale]; ok {
		delete(table, name)
	}
}

// Lookup returns the rule for (locale, name), falling back to the default
// locale's rule of the same name.
func (r *Registry) Lookup(locale, name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.rules[locale][name]; ok {
		return fn, true
	}
	fn, ok := r.rules[DefaultLocale][name]
	return fn, ok
}

// Has reports whether locale itself has a rule under name, without the
// default-locale fallback of Lookup.
func (r *Registry) Has(locale, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[locale][name]
	return ok
}

// SetLocale changes the current locale and returns it. Setting an unseen
// locale creates an empty rule table for it. An empty locale is ignored.
func (r *Registry) SetLocale(locale string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if locale != "" {
		r.locale = locale
		if _, ok := r.rules[locale]; !ok {
			r.rules[locale] = make(map[string]Rule)
		}
	}
	return r.locale
}

// Locale returns the current locale.
func (r *Registry) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locale
}

// Locales returns every locale with a rule table, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	locales := make([]string, 0, len(r.rules))
	for locale := range r.rules {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Validate reports ErrRuleNotFound when numeric values cannot be resolved
// under the current locale. Call it at startup, after configuration.
func (r *Registry) Validate() error {
	locale := r.Locale()
	if _, ok := r.Lookup(locale, PluralRuleName); !ok {
		return fmt.Errorf("%w: %q for locale %q", ErrRuleNotFound, PluralRuleName, locale)
	}
	return nil
}

// set assumes the write lock is held or the registry is not yet shared.
func (r *Registry) set(locale, name string, fn Rule) {
	table, ok := r.rules[locale]
	if !ok {
		table = make(map[string]Rule)
		r.rules[locale] = table
	}
	table[name] = fn
}

// PluralRule adapts an integer plural rule to a keyword Rule. Values that are
// not integral numbers map to "other".
func PluralRule(rule i18n.PluralRule) Rule {
	return func(value any) string {
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
			f >= math.MaxInt || f <= math.MinInt {
			return i18n.PluralOther
		}
		return rule(int(f))
	}
}

func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the process-wide registry used by the package-level helpers.
func Default() *Registry {
	return defaultRegistry
}

// Register stores fn in the default registry.
func Register(locale, name string, fn Rule) error {
	return defaultRegistry.Register(locale, name, fn)
}

// Unregister removes a rule from the default registry.
func Unregister(locale, name string) {
	defaultRegistry.Unregister(locale, name)
}

// SetLocale changes the default registry's current locale.
func SetLocale(locale string) string {
	return defaultRegistry.SetLocale(locale)
}

// Locale returns the default registry's current locale.
func Locale() string {
	return defaultRegistry.Locale()
}
