package goinput

import "time"

// Input is the contract every form field satisfies. I is the update message
// (raw text for atomic fields, a closed tagged union for composite ones) and
// O is the parsed output type.
//
// Update replaces raw editable state only. SetValue forces the field to the
// canonical textual rendering of a known-valid output. Parse converts the
// stored raw state to O without mutating it; calling Parse repeatedly with no
// intervening Update/SetValue yields the same result.
type Input[I, O any] interface {
	Update(input I)
	SetValue(value O)
	Parse() (O, error)
}

// Form ties a collection of named fields together. Update routes the message
// to the field owning that variant. Parse attempts every field's Parse
// unconditionally, records failures into FormErrors keyed by field name, and
// returns the assembled output only when no field failed.
//
// This intentionally differs from composite fields, which fail fast across
// their children: a form wants to show the user every invalid field at once.
//
// By convention, implementations provide a New-style constructor taking the
// output type plus per-field rule sets.
type Form[M, O any] interface {
	Update(msg M)
	Parse() (O, error)
}

// Clock supplies the current time to fields whose defaults derive from it
// (Date, Year, RelativeMonth, RelativeQuarter). Defaults read the clock once,
// at construction. Tests substitute a fixed instant.
type Clock func() time.Time

// SystemClock reads the ambient wall clock.
var SystemClock Clock = time.Now
