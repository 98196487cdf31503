package inputs

import (
	"time"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/period"
)

// MonthMsg is the closed update union for a Month field: one case per child.
// Routing is a single dispatch on the concrete case; no case ever touches the
// other child.
type MonthMsg interface {
	monthMsg()
}

// MonthYear updates the year child's raw text.
type MonthYear string

func (MonthYear) monthMsg() {}

// MonthNumber updates the month-ordinal child's raw text.
type MonthNumber string

func (MonthNumber) monthMsg() {}

// Month assembles a calendar month from a Year child and a RelativeMonth
// child, each with its own raw text and error surface, plus a rule set over
// the assembled month that runs only when both children parse.
type Month struct {
	year  *Year
	month *RelativeMonth
	rules goinput.Rules[period.Month]
}

func NewMonth(value period.Month, rules ...goinput.Rule[period.Month]) *Month {
	return NewMonthFrom(
		NewYear(value.Year()),
		NewRelativeMonth(value.MonthNum()),
		rules...,
	)
}

// NewMonthFrom admits children that carry their own rule sets.
func NewMonthFrom(year *Year, month *RelativeMonth, rules ...goinput.Rule[period.Month]) *Month {
	return &Month{
		year:  year,
		month: month,
		rules: goinput.NewRules(rules...),
	}
}

// CurrentMonth returns a month field seeded from the clock.
func CurrentMonth(clock goinput.Clock, rules ...goinput.Rule[period.Month]) *Month {
	return NewMonth(period.MonthFromDate(period.FromTime(clock())), rules...)
}

// YearInput exposes the year child for rendering.
func (m *Month) YearInput() *Year { return m.year }

// MonthInput exposes the month-ordinal child for rendering.
func (m *Month) MonthInput() *RelativeMonth { return m.month }

func (m *Month) Update(msg MonthMsg) {
	switch v := msg.(type) {
	case MonthYear:
		m.year.Update(string(v))
	case MonthNumber:
		m.month.Update(string(v))
	}
}

func (m *Month) SetValue(value period.Month) {
	m.year.SetValue(value.Year())
	m.month.SetValue(value.MonthNum())
}

// Parse evaluates children left to right and fails fast: the first failing
// child's error is the composite's error, and the assembled-level rules run
// only after both children succeed.
func (m *Month) Parse() (period.Month, error) {
	year, err := m.year.Parse()
	if err != nil {
		return period.Month{}, err
	}
	num, err := m.month.Parse()
	if err != nil {
		return period.Month{}, err
	}
	parsed := period.MonthOf(year.Num(), time.Month(num))
	if err := m.rules.Validate(parsed); err != nil {
		return period.Month{}, err
	}
	return parsed, nil
}
