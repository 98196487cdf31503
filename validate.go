package goinput

// Rule is a pure predicate over an already-parsed value. A nil return means
// the value passed; a non-nil error's text becomes the rule's failure
// message. Rules must not mutate the value or carry state.
type Rule[T any] func(value T) error

// Rules is an ordered, immutable set of rules for T. The zero value is an
// empty set and validates everything.
type Rules[T any] struct {
	funcs []Rule[T]
}

// NewRules builds a rule set that runs the given rules in order.
func NewRules[T any](funcs ...Rule[T]) Rules[T] {
	return Rules[T]{funcs: funcs}
}

// Validate runs every rule against value regardless of earlier failures and
// collects all failure messages in registration order. It returns nil when
// zero rules failed, otherwise ValidationErrors.
func (rs Rules[T]) Validate(value T) error {
	var errs ValidationErrors
	for _, fn := range rs.funcs {
		if err := fn(value); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
