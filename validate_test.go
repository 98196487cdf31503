package goinput_test

import (
	"errors"
	"testing"

	goinput "github.com/reoring/goinput"
)

func TestRules_FanOut_CollectsEveryFailure(t *testing.T) {
	even := func(n int) error {
		if n%2 != 0 {
			return errors.New("must be even")
		}
		return nil
	}
	positive := func(n int) error {
		if n <= 0 {
			return errors.New("must be positive")
		}
		return nil
	}
	small := func(n int) error {
		if n > 100 {
			return errors.New("must be at most 100")
		}
		return nil
	}

	rs := goinput.NewRules(even, positive, small)

	// all pass
	if err := rs.Validate(2); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	// two of three fail, registration order preserved
	err := rs.Validate(-3)
	ve, ok := goinput.AsValidationErrors(err)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve) != 2 || ve[0] != "must be even" || ve[1] != "must be positive" {
		t.Fatalf("unexpected messages: %v", ve)
	}

	// all three fail
	err = rs.Validate(101)
	ve, ok = goinput.AsValidationErrors(err)
	if !ok || len(ve) != 2 {
		t.Fatalf("expected 2 failures for 101, got %v", err)
	}
}

func TestRules_Empty_ValidatesEverything(t *testing.T) {
	var rs goinput.Rules[string]
	if err := rs.Validate("anything"); err != nil {
		t.Fatalf("zero-value rule set should pass, got %v", err)
	}
}

func TestValidationErrors_Display(t *testing.T) {
	err := goinput.ValidationErrors{"a", "b"}
	if got := err.Error(); got != "validation error(s) [a, b]" {
		t.Fatalf("unexpected display: %q", got)
	}
}
