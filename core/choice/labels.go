package choice

import (
	"fmt"
	"slices"
	"strings"
)

// Labels is a parsed label specification. A keyword matches when it equals
// any of the tokens.
type Labels []string

// ParseLabels accepts a space-delimited string, a []string, a []any of
// strings or Labels. Anything else, and empty specifications, are rejected.
func ParseLabels(spec any) (Labels, error) {
	var labels Labels
	switch v := spec.(type) {
	case Labels:
		labels = slices.Clone(v)
	case string:
		labels = strings.Fields(v)
	case []string:
		labels = slices.Clone(v)
	case []any:
		labels = make(Labels, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, want string", ErrInvalidLabels, i, item)
			}
			labels = append(labels, s)
		}
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidLabels, spec)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labels", ErrInvalidLabels)
	}
	return labels, nil
}

// MustLabels is ParseLabels for specifications written in code; it panics on error.
func MustLabels(spec any) Labels {
	labels, err := ParseLabels(spec)
	if err != nil {
		panic(err)
	}
	return labels
}

// Contains reports whether keyword equals one of the labels exactly.
func (l Labels) Contains(keyword string) bool {
	return slices.Contains(l, keyword)
}

// String joins the labels back into their space-delimited form.
func (l Labels) String() string {
	return strings.Join(l, " ")
}

// Matches is the label matcher: case-sensitive membership of keyword in labels.
func Matches(keyword string, labels Labels) bool {
	return labels.Contains(keyword)
}
