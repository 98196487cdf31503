package inputs

import (
	"fmt"
	"strconv"

	goinput "github.com/reoring/goinput"
)

// RelativeMonth is the month-within-year ordinal, 1 through 12.
//
// The bounds check runs inside Parse, before the field's own registered
// rules, yet surfaces as ValidationErrors rather than a ParseError. Callers
// depend on the message wording and on which channel it arrives through, so
// both are kept as-is.
type RelativeMonth struct {
	input string
	rules goinput.Rules[int]
}

func NewRelativeMonth(value int, rules ...goinput.Rule[int]) *RelativeMonth {
	// out-of-range seed values are accepted; they just fail a later Parse
	return &RelativeMonth{
		input: strconv.Itoa(value),
		rules: goinput.NewRules(rules...),
	}
}

// ThisMonth returns a month-ordinal field seeded from the clock.
func ThisMonth(clock goinput.Clock, rules ...goinput.Rule[int]) *RelativeMonth {
	return NewRelativeMonth(int(clock().Month()), rules...)
}

func (m *RelativeMonth) Input() string { return m.input }

func (m *RelativeMonth) Update(input string) { m.input = input }

func (m *RelativeMonth) SetValue(value int) { m.input = strconv.Itoa(value) }

func (m *RelativeMonth) Parse() (int, error) {
	parsed, err := strconv.Atoi(m.input)
	if err != nil {
		return 0, &goinput.ParseError{Cause: err}
	}
	if parsed < 1 || parsed > 12 {
		return 0, goinput.ValidationErrors{
			fmt.Sprintf("Month number should be between 1 and 12 but was %d", parsed),
		}
	}
	if err := m.rules.Validate(parsed); err != nil {
		return 0, err
	}
	return parsed, nil
}

// RelativeQuarter is the quarter-within-year ordinal, 1 through 4. Same
// bounds-check channel as RelativeMonth.
type RelativeQuarter struct {
	input string
	rules goinput.Rules[int]
}

func NewRelativeQuarter(value int, rules ...goinput.Rule[int]) *RelativeQuarter {
	return &RelativeQuarter{
		input: strconv.Itoa(value),
		rules: goinput.NewRules(rules...),
	}
}

// ThisQuarter returns a quarter-ordinal field seeded from the clock.
func ThisQuarter(clock goinput.Clock, rules ...goinput.Rule[int]) *RelativeQuarter {
	return NewRelativeQuarter((int(clock().Month())+2)/3, rules...)
}

func (q *RelativeQuarter) Input() string { return q.input }

func (q *RelativeQuarter) Update(input string) { q.input = input }

func (q *RelativeQuarter) SetValue(value int) { q.input = strconv.Itoa(value) }

func (q *RelativeQuarter) Parse() (int, error) {
	parsed, err := strconv.Atoi(q.input)
	if err != nil {
		return 0, &goinput.ParseError{Cause: err}
	}
	if parsed < 1 || parsed > 4 {
		return 0, goinput.ValidationErrors{
			fmt.Sprintf("Quarter number should be between 1 and 4 but was %d", parsed),
		}
	}
	if err := q.rules.Validate(parsed); err != nil {
		return 0, err
	}
	return parsed, nil
}
