package inputs_test

import (
	"errors"
	"testing"
	"time"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/inputs"
	"github.com/reoring/goinput/period"
)

func monthRange(start period.Month, length int) period.Range[period.Month] {
	return period.NewRange(start, length)
}

func TestTimeRange_ParsesStartAndLength(t *testing.T) {
	in := inputs.NewTimeRange[inputs.MonthMsg](
		monthRange(period.MonthOf(2024, time.January), 1),
		inputs.NewMonth(period.MonthOf(2024, time.January)),
		nil,
	)
	in.Update(inputs.RangeStart[inputs.MonthMsg]{Msg: inputs.MonthYear("2024")})
	in.Update(inputs.RangeStart[inputs.MonthMsg]{Msg: inputs.MonthNumber("11")})
	in.Update(inputs.RangeLength("3"))

	v, err := in.Parse()
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.Start() != period.MonthOf(2024, time.November) || v.Len() != 3 {
		t.Fatalf("got %+v", v)
	}
	if v.End() != period.MonthOf(2025, time.January) {
		t.Fatalf("end: %v", v.End())
	}
}

func TestTimeRange_ZeroLengthFailsBuiltInRule(t *testing.T) {
	in := inputs.NewTimeRange[inputs.MonthMsg](
		monthRange(period.MonthOf(2024, time.January), 1),
		inputs.NewMonth(period.MonthOf(2024, time.January)),
		nil,
	)
	in.Update(inputs.RangeLength("0"))

	_, err := in.Parse()
	ve, ok := goinput.AsValidationErrors(err)
	if !ok || len(ve) != 1 || ve[0] != "Input must be greater than zero" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestTimeRange_StartFailureWins(t *testing.T) {
	in := inputs.NewTimeRange[inputs.MonthMsg](
		monthRange(period.MonthOf(2024, time.January), 1),
		inputs.NewMonth(period.MonthOf(2024, time.January)),
		nil,
	)
	in.Update(inputs.RangeStart[inputs.MonthMsg]{Msg: inputs.MonthYear("??")})
	in.Update(inputs.RangeLength("0")) // also invalid, must never surface

	_, err := in.Parse()
	if _, ok := goinput.AsParseError(err); !ok {
		t.Fatalf("expected the start's ParseError, got %v", err)
	}
}

func TestTimeRange_CompositeLengthRules(t *testing.T) {
	atMostTwelve := func(n int) error {
		if n > 12 {
			return errors.New("length must be at most 12")
		}
		return nil
	}
	in := inputs.NewTimeRange[inputs.MonthMsg](
		monthRange(period.MonthOf(2024, time.January), 1),
		inputs.NewMonth(period.MonthOf(2024, time.January)),
		[]goinput.Rule[int]{atMostTwelve},
	)
	in.Update(inputs.RangeLength("24"))

	_, err := in.Parse()
	ve, ok := goinput.AsValidationErrors(err)
	if !ok || ve[0] != "length must be at most 12" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestTimeRange_RangeRulesSeeAssembledValue(t *testing.T) {
	endsThisDecade := func(r period.Range[period.Year]) error {
		if r.End().Num() > 2029 {
			return errors.New("range must end before 2030")
		}
		return nil
	}
	in := inputs.NewTimeRange[string](
		period.NewRange(period.YearOf(2024), 1),
		inputs.NewYear(period.YearOf(2024)),
		nil,
		endsThisDecade,
	)
	in.Update(inputs.RangeLength("10"))

	_, err := in.Parse()
	ve, ok := goinput.AsValidationErrors(err)
	if !ok || ve[0] != "range must end before 2030" {
		t.Fatalf("unexpected: %v", err)
	}

	in.Update(inputs.RangeLength("6"))
	v, err := in.Parse()
	if err != nil || v.End() != period.YearOf(2029) {
		t.Fatalf("got %+v err %v", v, err)
	}
}

func TestTimeRange_SetValueSeedsBothChildren(t *testing.T) {
	in := inputs.NewTimeRange[inputs.MonthMsg](
		monthRange(period.MonthOf(2024, time.January), 1),
		inputs.NewMonth(period.MonthOf(2024, time.January)),
		nil,
	)
	in.SetValue(monthRange(period.MonthOf(2025, time.March), 4))
	if in.LengthInput().Input() != "4" {
		t.Fatalf("length raw: %q", in.LengthInput().Input())
	}
	v, err := in.Parse()
	if err != nil || v.Start() != period.MonthOf(2025, time.March) || v.Len() != 4 {
		t.Fatalf("round trip: %+v %v", v, err)
	}
}
