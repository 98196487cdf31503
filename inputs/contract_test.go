package inputs_test

import (
	"time"

	"github.com/shopspring/decimal"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/inputs"
	"github.com/reoring/goinput/period"
)

// Every field kind satisfies the Input contract.
var (
	_ goinput.Input[string, string]          = (*inputs.Scalar[string])(nil)
	_ goinput.Input[string, int]             = (*inputs.Scalar[int])(nil)
	_ goinput.Input[string, decimal.Decimal] = (*inputs.Scalar[decimal.Decimal])(nil)
	_ goinput.Input[string, string]          = (*inputs.Select[string])(nil)
	_ goinput.Input[string, int]             = (*inputs.RelationalSelect[int, string])(nil)
	_ goinput.Input[string, period.Date]     = (*inputs.Date)(nil)
	_ goinput.Input[string, time.Time]       = (*inputs.Time)(nil)
	_ goinput.Input[string, period.Year]     = (*inputs.Year)(nil)
	_ goinput.Input[string, int]             = (*inputs.RelativeMonth)(nil)
	_ goinput.Input[string, int]             = (*inputs.RelativeQuarter)(nil)

	_ goinput.Input[inputs.MonthMsg, period.Month]     = (*inputs.Month)(nil)
	_ goinput.Input[inputs.QuarterMsg, period.Quarter] = (*inputs.Quarter)(nil)

	_ goinput.Input[inputs.TimeRangeMsg, period.Range[period.Month]] = (*inputs.TimeRange[inputs.MonthMsg, period.Month])(nil)
	_ goinput.Input[inputs.TimeRangeMsg, period.Range[period.Year]]  = (*inputs.TimeRange[string, period.Year])(nil)
)
