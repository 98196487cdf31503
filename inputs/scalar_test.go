package inputs_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/inputs"
)

func TestText_AlwaysParses(t *testing.T) {
	in := inputs.Text("hello")
	if v, err := in.Parse(); err != nil || v != "hello" {
		t.Fatalf("got %q err %v", v, err)
	}
	in.Update("")
	if v, err := in.Parse(); err != nil || v != "" {
		t.Fatalf("empty text must parse, got %q err %v", v, err)
	}
}

func TestInt_ParseAndRawRetention(t *testing.T) {
	in := inputs.Int(0)
	in.Update("42")
	if v, err := in.Parse(); err != nil || v != 42 {
		t.Fatalf("got %d err %v", v, err)
	}

	in.Update("4x2")
	_, err := in.Parse()
	pe, ok := goinput.AsParseError(err)
	if !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
	var ne *strconv.NumError
	if !errors.As(pe.Cause, &ne) {
		t.Fatalf("expected strconv cause, got %v", pe.Cause)
	}
	// the raw text survives the failed parse untouched
	if in.Input() != "4x2" {
		t.Fatalf("raw input mutated: %q", in.Input())
	}

	// idempotence: same result twice with no intervening update
	_, err2 := in.Parse()
	if err2 == nil || err2.Error() != err.Error() {
		t.Fatalf("parse not idempotent: %v vs %v", err, err2)
	}
}

func TestInt_UnsignedRejectsNegative(t *testing.T) {
	in := inputs.Int(uint8(0))
	in.Update("-1")
	if _, err := in.Parse(); err == nil {
		t.Fatalf("expected failure for negative unsigned")
	}
	in.Update("300")
	_, err := in.Parse()
	pe, ok := goinput.AsParseError(err)
	if !ok || !errors.Is(pe.Cause, strconv.ErrRange) {
		t.Fatalf("expected range failure, got %v", err)
	}
	in.Update("250")
	if v, err := in.Parse(); err != nil || v != 250 {
		t.Fatalf("got %d err %v", v, err)
	}
}

func TestInt_RulesRunOnlyAfterParse(t *testing.T) {
	nonZero := func(n int) error {
		if n == 0 {
			return errors.New("must not be zero")
		}
		return nil
	}
	in := inputs.Int(1, nonZero)

	in.Update("0")
	_, err := in.Parse()
	ve, ok := goinput.AsValidationErrors(err)
	if !ok || len(ve) != 1 || ve[0] != "must not be zero" {
		t.Fatalf("expected rule failure, got %v", err)
	}

	// a parse failure is terminal: the rule never sees the value
	in.Update("zero")
	_, err = in.Parse()
	if _, ok := goinput.AsValidationErrors(err); ok {
		t.Fatalf("rules must not run on unparsed text: %v", err)
	}
	if _, ok := goinput.AsParseError(err); !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestDecimal_RoundTrip(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	in := inputs.Decimal(decimal.Zero)
	in.SetValue(price)
	if in.Input() != "19.99" {
		t.Fatalf("canonical rendering: %q", in.Input())
	}
	v, err := in.Parse()
	if err != nil || !v.Equal(price) {
		t.Fatalf("got %v err %v", v, err)
	}

	in.Update("nineteen")
	if _, err := in.Parse(); err == nil {
		t.Fatalf("expected decimal parse failure")
	}
}

func TestScalar_SetValueReplacesInvalidText(t *testing.T) {
	in := inputs.Int(0)
	in.Update("garbage")
	in.SetValue(7)
	if in.Input() != "7" {
		t.Fatalf("unexpected raw: %q", in.Input())
	}
	if v, err := in.Parse(); err != nil || v != 7 {
		t.Fatalf("round trip: %d %v", v, err)
	}
}
