package goinput

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ParseError reports that raw text could not be converted to the target type
// at all. It wraps whatever structured error the underlying conversion
// produced. Validation rules are never run after a parse failure, so a single
// Parse call never yields both a ParseError and ValidationErrors.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error %v", e.Cause) }

func (e *ParseError) Unwrap() error { return e.Cause }

// ValidationErrors carries the ordered messages of every rule that rejected
// an already-parsed value, not just the first.
type ValidationErrors []string

func (ve ValidationErrors) Error() string {
	return fmt.Sprintf("validation error(s) [%s]", strings.Join(ve, ", "))
}

// AsParseError extracts a ParseError from err using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsValidationErrors extracts ValidationErrors from err using errors.As internally.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FormErrors maps field names to the error their Parse returned. A name
// present in the map means that field failed; absence means success.
type FormErrors map[string]error

// Put records err under field, doing nothing when err is nil. This lets a
// Form implementation feed every field's parse result through unconditionally.
func (fe FormErrors) Put(field string, err error) {
	if err != nil {
		fe[field] = err
	}
}

// Empty reports whether no field failed.
func (fe FormErrors) Empty() bool { return len(fe) == 0 }

// Fields returns the failed field names in sorted order.
func (fe FormErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fe FormErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, name := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %v", name, fe[name]))
	}
	return strings.Join(parts, ", ")
}
