// Package inputs provides the field implementations behind interactive form
// inputs: atomic fields backed by a single raw string (Text, Int, Decimal,
// Date, Select, ...) and composite fields assembled from independently
// editable children (Month, Quarter, TimeRange).
package inputs

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Conv carries a typed value across the text boundary: Parse converts raw
// text into the value and Format renders the canonical text for one. Parse
// failures surface as the underlying conversion error.
type Conv[O any] struct {
	Parse  func(s string) (O, error)
	Format func(v O) string
}

// IntegerKind matches the built-in integer kinds the numeric inputs accept.
type IntegerKind interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// StringConv is the infallible identity conversion for free text.
func StringConv() Conv[string] {
	return Conv[string]{
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(v string) string { return v },
	}
}

// IntConv converts decimal integer text to T, reporting out-of-range text
// with strconv.ErrRange like the underlying parser would.
func IntConv[T IntegerKind]() Conv[T] {
	return Conv[T]{Parse: parseInteger[T], Format: formatInteger[T]}
}

// DecimalConv converts arbitrary-precision decimal text.
func DecimalConv() Conv[decimal.Decimal] {
	return Conv[decimal.Decimal]{
		Parse:  decimal.NewFromString,
		Format: decimal.Decimal.String,
	}
}

func parseInteger[T IntegerKind](s string) (T, error) {
	var zero T
	if zero-1 < zero { // signed kind
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, err
		}
		v := T(n)
		if int64(v) != n {
			return zero, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrRange}
		}
		return v, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, err
	}
	v := T(n)
	if uint64(v) != n {
		return zero, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrRange}
	}
	return v, nil
}

func formatInteger[T IntegerKind](v T) string {
	var zero T
	if zero-1 < zero {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
