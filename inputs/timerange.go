package inputs

import (
	"errors"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/period"
)

// GreaterThanZero is the built-in rule on a TimeRange's length field.
func GreaterThanZero(n int) error {
	if n > 0 {
		return nil
	}
	return errors.New("Input must be greater than zero")
}

// TimeRangeMsg is the closed update union for a TimeRange field. The start
// case carries the start child's own message type M, so composites nest.
type TimeRangeMsg interface {
	timeRangeMsg()
}

// RangeStart routes a nested update to the starting-period child.
type RangeStart[M any] struct {
	Msg M
}

func (RangeStart[M]) timeRangeMsg() {}

// RangeLength updates the length child's raw text.
type RangeLength string

func (RangeLength) timeRangeMsg() {}

// TimeRange assembles a bounded range of consecutive periods at resolution R
// from a starting-period child (any Input producing R, itself possibly
// composite) and an integer length child.
type TimeRange[M any, R period.Resolution[R]] struct {
	start       goinput.Input[M, R]
	length      *Scalar[int]
	lengthRules goinput.Rules[int]
	rangeRules  goinput.Rules[period.Range[R]]
}

// NewTimeRange seeds start from the range's starting period and the length
// child from its length. The length child always carries GreaterThanZero;
// lengthRules are additional rules run at the composite level.
func NewTimeRange[M any, R period.Resolution[R]](
	value period.Range[R],
	start goinput.Input[M, R],
	lengthRules []goinput.Rule[int],
	rules ...goinput.Rule[period.Range[R]],
) *TimeRange[M, R] {
	start.SetValue(value.Start())
	return &TimeRange[M, R]{
		start:       start,
		length:      Int(value.Len(), GreaterThanZero),
		lengthRules: goinput.NewRules(lengthRules...),
		rangeRules:  goinput.NewRules(rules...),
	}
}

// StartInput exposes the starting-period child for rendering.
func (tr *TimeRange[M, R]) StartInput() goinput.Input[M, R] { return tr.start }

// LengthInput exposes the length child for rendering.
func (tr *TimeRange[M, R]) LengthInput() *Scalar[int] { return tr.length }

func (tr *TimeRange[M, R]) Update(msg TimeRangeMsg) {
	switch v := msg.(type) {
	case RangeStart[M]:
		tr.start.Update(v.Msg)
	case RangeLength:
		tr.length.Update(string(v))
	}
}

func (tr *TimeRange[M, R]) SetValue(value period.Range[R]) {
	tr.length.SetValue(value.Len())
	tr.start.SetValue(value.Start())
}

// Parse evaluates start, then length, then the composite-level length rules,
// then the assembled range rules; the first failure wins.
func (tr *TimeRange[M, R]) Parse() (period.Range[R], error) {
	var zero period.Range[R]
	start, err := tr.start.Parse()
	if err != nil {
		return zero, err
	}
	n, err := tr.length.Parse()
	if err != nil {
		return zero, err
	}
	if err := tr.lengthRules.Validate(n); err != nil {
		return zero, err
	}
	parsed := period.NewRange(start, n)
	if err := tr.rangeRules.Validate(parsed); err != nil {
		return zero, err
	}
	return parsed, nil
}
