package inputs

import (
	goinput "github.com/reoring/goinput"
	"github.com/shopspring/decimal"
)

// Scalar is the generic field backing a single typed value with one raw
// string. Parse converts the raw text through the field's Conv and, only on
// success, runs the field's rule set; it never mutates the stored text.
type Scalar[O any] struct {
	input string
	conv  Conv[O]
	rules goinput.Rules[O]
}

// NewScalar seeds the field with the canonical rendering of value.
func NewScalar[O any](value O, conv Conv[O], rules ...goinput.Rule[O]) *Scalar[O] {
	return &Scalar[O]{
		input: conv.Format(value),
		conv:  conv,
		rules: goinput.NewRules(rules...),
	}
}

// Input returns the raw text exactly as last set, valid or not.
func (s *Scalar[O]) Input() string { return s.input }

func (s *Scalar[O]) Update(input string) { s.input = input }

func (s *Scalar[O]) SetValue(value O) { s.input = s.conv.Format(value) }

func (s *Scalar[O]) Parse() (O, error) {
	var zero O
	parsed, err := s.conv.Parse(s.input)
	if err != nil {
		return zero, &goinput.ParseError{Cause: err}
	}
	if err := s.rules.Validate(parsed); err != nil {
		return zero, err
	}
	return parsed, nil
}

// Text returns a free-text field; its parse always succeeds.
func Text(value string, rules ...goinput.Rule[string]) *Scalar[string] {
	return NewScalar(value, StringConv(), rules...)
}

// Int returns an integer field over any built-in integer kind.
func Int[T IntegerKind](value T, rules ...goinput.Rule[T]) *Scalar[T] {
	return NewScalar(value, IntConv[T](), rules...)
}

// Decimal returns an arbitrary-precision decimal field.
func Decimal(value decimal.Decimal, rules ...goinput.Rule[decimal.Decimal]) *Scalar[decimal.Decimal] {
	return NewScalar(value, DecimalConv(), rules...)
}
