package inputs

import (
	"fmt"
	"slices"

	goinput "github.com/reoring/goinput"
)

// SelectError reports raw text whose parsed candidate is not a member of a
// select field's option set. It travels wrapped in a ParseError: membership
// failure is a conversion failure, not a rule failure.
type SelectError struct {
	Selected string
}

func (e *SelectError) Error() string {
	return fmt.Sprintf("Value %s is not in the list of allowed options", e.Selected)
}

// Select is a field whose value must come from a fixed, ordered set of
// options supplied at construction.
type Select[O comparable] struct {
	input   string
	conv    Conv[O]
	options []O
}

func NewSelect[O comparable](value O, options []O, conv Conv[O]) *Select[O] {
	return &Select[O]{
		input:   conv.Format(value),
		conv:    conv,
		options: slices.Clone(options),
	}
}

// Strings is the common fixed-string select.
func Strings(value string, options ...string) *Select[string] {
	return NewSelect(value, options, StringConv())
}

// Options returns the option set in its fixed order.
func (s *Select[O]) Options() []O { return slices.Clone(s.options) }

func (s *Select[O]) Input() string { return s.input }

func (s *Select[O]) Update(input string) { s.input = input }

func (s *Select[O]) SetValue(value O) { s.input = s.conv.Format(value) }

func (s *Select[O]) Parse() (O, error) {
	var zero O
	parsed, err := s.conv.Parse(s.input)
	if err != nil {
		return zero, &goinput.ParseError{Cause: err}
	}
	if !slices.Contains(s.options, parsed) {
		return zero, &goinput.ParseError{Cause: &SelectError{Selected: s.input}}
	}
	return parsed, nil
}

// Option is one key/label pair of a RelationalSelect.
type Option[K comparable, V any] struct {
	Key   K
	Label V
}

// RelationalSelect is a field whose value is a key into an ordered key→label
// mapping. The mapping may be computed at runtime, which is why key lookup,
// not positional index, is the membership test.
type RelationalSelect[K comparable, V any] struct {
	input   string
	conv    Conv[K]
	options []Option[K, V]
}

// NewRelationalSelect seeds the field with raw input text rather than a typed
// key: the initial text may legitimately name no option yet.
func NewRelationalSelect[K comparable, V any](input string, options []Option[K, V], conv Conv[K]) *RelationalSelect[K, V] {
	return &RelationalSelect[K, V]{
		input:   input,
		conv:    conv,
		options: slices.Clone(options),
	}
}

// Options returns the key/label pairs in their fixed order.
func (s *RelationalSelect[K, V]) Options() []Option[K, V] { return slices.Clone(s.options) }

func (s *RelationalSelect[K, V]) Input() string { return s.input }

func (s *RelationalSelect[K, V]) Update(input string) { s.input = input }

func (s *RelationalSelect[K, V]) SetValue(key K) { s.input = s.conv.Format(key) }

func (s *RelationalSelect[K, V]) Parse() (K, error) {
	var zero K
	key, err := s.conv.Parse(s.input)
	if err != nil {
		return zero, &goinput.ParseError{Cause: err}
	}
	for _, opt := range s.options {
		if opt.Key == key {
			return key, nil
		}
	}
	return zero, &goinput.ParseError{Cause: &SelectError{Selected: s.input}}
}
