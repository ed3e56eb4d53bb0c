package choice

import "errors"

var (
	// ErrEmptyRuleName is returned when registering a rule without a name.
	ErrEmptyRuleName = errors.New("choice: rule name cannot be empty")
	// ErrNilRule is returned when registering a nil keyword rule.
	ErrNilRule = errors.New("choice: rule cannot be nil")
	// ErrRuleNotFound is returned when neither the requested locale nor the
	// default locale has a rule under the requested name.
	ErrRuleNotFound = errors.New("choice: rule not found")
	// ErrConflictingResolver is returned when a selector receives a resolver
	// function both positionally and through the "function" option.
	ErrConflictingResolver = errors.New("choice: resolver given both as argument and as function option")
	// ErrUnknownType is returned for a "type" option other than "boolean".
	ErrUnknownType = errors.New("choice: unknown type option")
	// ErrInvalidOption is returned when a reserved option holds a value of the wrong type.
	ErrInvalidOption = errors.New("choice: invalid option value")
	// ErrInvalidLabels is returned for label specifications that are neither a
	// space-delimited string nor a sequence of strings.
	ErrInvalidLabels = errors.New("choice: invalid label specification")
)
