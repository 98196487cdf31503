package inputs

import (
	"strconv"
	"time"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/period"
)

// Date is a field backed by raw text plus a fixed Go layout. The layout is
// used both to render a value into text (SetValue) and to parse text back;
// it is set per field instance and is not user-editable.
type Date struct {
	input  string
	layout string
	rules  goinput.Rules[period.Date]
}

func NewDate(value period.Date, layout string, rules ...goinput.Rule[period.Date]) *Date {
	return &Date{
		input:  value.Format(layout),
		layout: layout,
		rules:  goinput.NewRules(rules...),
	}
}

// Today returns a date field seeded from the clock with the ISO layout.
func Today(clock goinput.Clock, rules ...goinput.Rule[period.Date]) *Date {
	return NewDate(period.FromTime(clock()), period.ISODate, rules...)
}

func (d *Date) Input() string { return d.input }

func (d *Date) Update(input string) { d.input = input }

func (d *Date) SetValue(value period.Date) { d.input = value.Format(d.layout) }

func (d *Date) Parse() (period.Date, error) {
	parsed, err := period.ParseDate(d.layout, d.input)
	if err != nil {
		return period.Date{}, &goinput.ParseError{Cause: err}
	}
	if err := d.rules.Validate(parsed); err != nil {
		return period.Date{}, err
	}
	return parsed, nil
}

// Time is the instant-valued sibling of Date for layouts that carry
// time-of-day. Round-tripping through SetValue and Parse preserves exactly
// the precision the layout renders.
type Time struct {
	input  string
	layout string
	rules  goinput.Rules[time.Time]
}

func NewTime(value time.Time, layout string, rules ...goinput.Rule[time.Time]) *Time {
	return &Time{
		input:  value.Format(layout),
		layout: layout,
		rules:  goinput.NewRules(rules...),
	}
}

// Now returns a time field seeded from the clock.
func Now(clock goinput.Clock, layout string, rules ...goinput.Rule[time.Time]) *Time {
	return NewTime(clock(), layout, rules...)
}

func (t *Time) Input() string { return t.input }

func (t *Time) Update(input string) { t.input = input }

func (t *Time) SetValue(value time.Time) { t.input = value.Format(t.layout) }

func (t *Time) Parse() (time.Time, error) {
	parsed, err := time.Parse(t.layout, t.input)
	if err != nil {
		return time.Time{}, &goinput.ParseError{Cause: err}
	}
	if err := t.rules.Validate(parsed); err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// Year is an integer field parsed into a calendar year.
type Year struct {
	input string
	rules goinput.Rules[period.Year]
}

func NewYear(value period.Year, rules ...goinput.Rule[period.Year]) *Year {
	return &Year{
		input: strconv.Itoa(value.Num()),
		rules: goinput.NewRules(rules...),
	}
}

// ThisYear returns a year field seeded from the clock.
func ThisYear(clock goinput.Clock, rules ...goinput.Rule[period.Year]) *Year {
	return NewYear(period.YearOf(clock().Year()), rules...)
}

func (y *Year) Input() string { return y.input }

func (y *Year) Update(input string) { y.input = input }

func (y *Year) SetValue(value period.Year) { y.input = strconv.Itoa(value.Num()) }

func (y *Year) Parse() (period.Year, error) {
	n, err := strconv.Atoi(y.input)
	if err != nil {
		return period.Year{}, &goinput.ParseError{Cause: err}
	}
	parsed := period.YearOf(n)
	if err := y.rules.Validate(parsed); err != nil {
		return period.Year{}, err
	}
	return parsed, nil
}
