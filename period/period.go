// Package period provides the calendar value types the input fields parse
// into: a civil Date plus the coarser Year, Month and Quarter resolutions,
// and a Range of consecutive periods at any of those resolutions.
//
// Values are plain comparable structs; arithmetic delegates to time.Date
// normalization so out-of-range ordinals roll over the way the standard
// library rolls them.
package period

import (
	"fmt"
	"strconv"
	"time"
)

// ISODate is the default layout for date-valued fields.
const ISODate = "2006-01-02"

// Resolution is a calendar granularity. A resolution value knows the first
// day it covers and can step forward or backward by whole units of itself.
// Date, Year, Month and Quarter all satisfy Resolution over themselves.
type Resolution[R any] interface {
	StartDate() Date
	Advance(n int) R
}

// Date is a civil calendar date with no time-of-day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the date for the given components, normalized the same way
// time.Date normalizes them (e.g. February 30 rolls into March).
func DateOf(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses s against the given Go layout and truncates the result to
// a date; any time-of-day the layout carries is discarded.
func ParseDate(layout, s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Format renders the date using a Go layout.
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

func (d Date) String() string { return d.Format(ISODate) }

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date { return FromTime(d.Time().AddDate(0, 0, n)) }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }

// StartDate returns d itself; a date is its own one-day period.
func (d Date) StartDate() Date { return d }

// Advance steps n days.
func (d Date) Advance(n int) Date { return d.AddDays(n) }

// Year is a calendar year.
type Year struct {
	num int
}

func YearOf(num int) Year { return Year{num: num} }

func (y Year) Num() int { return y.num }

func (y Year) String() string { return strconv.Itoa(y.num) }

func (y Year) StartDate() Date { return DateOf(y.num, time.January, 1) }

func (y Year) Advance(n int) Year { return Year{num: y.num + n} }

// Month is a calendar month of a specific year.
type Month struct {
	year  int
	month time.Month
}

func MonthOf(year int, month time.Month) Month {
	d := DateOf(year, month, 1)
	return Month{year: d.Year(), month: d.Month()}
}

// MonthFromDate returns the month containing d.
func MonthFromDate(d Date) Month { return Month{year: d.Year(), month: d.Month()} }

func (m Month) Year() Year { return YearOf(m.year) }

// MonthNum returns the month ordinal within the year, 1 through 12.
func (m Month) MonthNum() int { return int(m.month) }

func (m Month) String() string { return m.StartDate().Format("2006-01") }

func (m Month) StartDate() Date { return DateOf(m.year, m.month, 1) }

func (m Month) Advance(n int) Month {
	return MonthFromDate(FromTime(m.StartDate().Time().AddDate(0, n, 0)))
}

// Quarter is a calendar quarter of a specific year.
type Quarter struct {
	year    int
	quarter int
}

func QuarterOf(year, quarter int) Quarter {
	m := MonthOf(year, time.Month(quarter*3-2))
	return QuarterFromDate(m.StartDate())
}

// QuarterFromDate returns the quarter containing d.
func QuarterFromDate(d Date) Quarter {
	return Quarter{year: d.Year(), quarter: (int(d.Month()) + 2) / 3}
}

func (q Quarter) Year() Year { return YearOf(q.year) }

// QuarterNum returns the quarter ordinal within the year, 1 through 4.
func (q Quarter) QuarterNum() int { return q.quarter }

func (q Quarter) String() string { return fmt.Sprintf("%d-Q%d", q.year, q.quarter) }

func (q Quarter) StartDate() Date {
	return DateOf(q.year, time.Month(q.quarter*3-2), 1)
}

func (q Quarter) Advance(n int) Quarter {
	return QuarterFromDate(FromTime(q.StartDate().Time().AddDate(0, n*3, 0)))
}

// Range is a run of consecutive periods at resolution R: a start period plus
// a length counted in units of R.
type Range[R Resolution[R]] struct {
	start  R
	length int
}

func NewRange[R Resolution[R]](start R, length int) Range[R] {
	return Range[R]{start: start, length: length}
}

func (r Range[R]) Start() R { return r.start }

// Len returns the range length in units of R.
func (r Range[R]) Len() int { return r.length }

// End returns the last period covered by the range.
func (r Range[R]) End() R { return r.start.Advance(r.length - 1) }

// StartDate returns the first day covered by the range.
func (r Range[R]) StartDate() Date { return r.start.StartDate() }
