package inputs

import (
	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/period"
)

// QuarterMsg is the closed update union for a Quarter field.
type QuarterMsg interface {
	quarterMsg()
}

// QuarterYear updates the year child's raw text.
type QuarterYear string

func (QuarterYear) quarterMsg() {}

// QuarterNumber updates the quarter-ordinal child's raw text.
type QuarterNumber string

func (QuarterNumber) quarterMsg() {}

// Quarter assembles a calendar quarter from a Year child and a
// RelativeQuarter child. Same composite contract as Month: fail-fast left to
// right, assembled rules only after both children parse.
type Quarter struct {
	year    *Year
	quarter *RelativeQuarter
	rules   goinput.Rules[period.Quarter]
}

func NewQuarter(value period.Quarter, rules ...goinput.Rule[period.Quarter]) *Quarter {
	return NewQuarterFrom(
		NewYear(value.Year()),
		NewRelativeQuarter(value.QuarterNum()),
		rules...,
	)
}

// NewQuarterFrom admits children that carry their own rule sets.
func NewQuarterFrom(year *Year, quarter *RelativeQuarter, rules ...goinput.Rule[period.Quarter]) *Quarter {
	return &Quarter{
		year:    year,
		quarter: quarter,
		rules:   goinput.NewRules(rules...),
	}
}

// CurrentQuarter returns a quarter field seeded from the clock.
func CurrentQuarter(clock goinput.Clock, rules ...goinput.Rule[period.Quarter]) *Quarter {
	return NewQuarter(period.QuarterFromDate(period.FromTime(clock())), rules...)
}

// YearInput exposes the year child for rendering.
func (q *Quarter) YearInput() *Year { return q.year }

// QuarterInput exposes the quarter-ordinal child for rendering.
func (q *Quarter) QuarterInput() *RelativeQuarter { return q.quarter }

func (q *Quarter) Update(msg QuarterMsg) {
	switch v := msg.(type) {
	case QuarterYear:
		q.year.Update(string(v))
	case QuarterNumber:
		q.quarter.Update(string(v))
	}
}

func (q *Quarter) SetValue(value period.Quarter) {
	q.year.SetValue(value.Year())
	q.quarter.SetValue(value.QuarterNum())
}

func (q *Quarter) Parse() (period.Quarter, error) {
	year, err := q.year.Parse()
	if err != nil {
		return period.Quarter{}, err
	}
	num, err := q.quarter.Parse()
	if err != nil {
		return period.Quarter{}, err
	}
	// first month of the quarter is num*3-2; QuarterOf builds from it
	parsed := period.QuarterOf(year.Num(), num)
	if err := q.rules.Validate(parsed); err != nil {
		return period.Quarter{}, err
	}
	return parsed, nil
}
