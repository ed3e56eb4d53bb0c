package choice

import (
	"fmt"
	"sort"
)

// Reserved option names. Every other key of Options is a candidate
// attribute shortcut label.
const (
	OptionFunction = "function"
	OptionType     = "type"
	OptionTrim     = "trim"
)

// TypeBoolean forces boolean keyword mapping regardless of the value's type.
const TypeBoolean = "boolean"

// Options are the named arguments of a selector invocation.
type Options map[string]any

// IsReserved reports whether key controls resolution rather than naming a label.
func IsReserved(key string) bool {
	switch key {
	case OptionFunction, OptionType, OptionTrim:
		return true
	}
	return false
}

// Function returns the resolver function set under "function", if any.
func (o Options) Function() (KeywordFunc, error) {
	v, ok := o[OptionFunction]
	if !ok || v == nil {
		return nil, nil
	}
	fn, ok := asKeywordFunc(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a keyword function, got %T", ErrInvalidOption, OptionFunction, v)
	}
	return fn, nil
}

// Type returns the "type" option. Only "" and TypeBoolean are accepted.
func (o Options) Type() (string, error) {
	v, ok := o[OptionType]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOption, OptionType, v)
	}
	if s != "" && s != TypeBoolean {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return s, nil
}

// Trim reports whether output should be trimmed. Only an explicit boolean
// false disables trimming.
func (o Options) Trim() bool {
	v, ok := o[OptionTrim].(bool)
	return !ok || v
}

// Shortcut returns the literal output bound to keyword, skipping reserved
// names. Nil values count as absent.
func (o Options) Shortcut(keyword string) (string, bool) {
	if IsReserved(keyword) {
		return "", false
	}
	v, ok := o[keyword]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Labels returns the non-reserved keys in sorted order.
func (o Options) Labels() []string {
	labels := make([]string, 0, len(o))
	for k := range o {
		if !IsReserved(k) {
			labels = append(labels, k)
		}
	}
	sort.Strings(labels)
	return labels
}

// Validate checks the reserved options.
func (o Options) Validate() error {
	if _, err := o.Function(); err != nil {
		return err
	}
	if _, err := o.Type(); err != nil {
		return err
	}
	if v, ok := o[OptionTrim]; ok && v != nil {
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%w: %q must be a bool, got %T", ErrInvalidOption, OptionTrim, v)
		}
	}
	return nil
}

// OptionsFromPairs builds Options from alternating key/value arguments, the
// shape template engines pass variadic named arguments in.
func OptionsFromPairs(pairs ...any) (Options, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of key/value arguments", ErrInvalidOption)
	}
	opts := make(Options, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: option name must be a string, got %T", ErrInvalidOption, pairs[i])
		}
		opts[key] = pairs[i+1]
	}
	return opts, nil
}
