package goinput

// Package goinput backs interactive form fields with a typed parse-and-validate pipeline:
//
// - Raw-text field state via the Input contract (Update/SetValue/Parse)
// - A stable two-kind error model: ParseError (text could not convert) and
//   ValidationErrors (converted, but domain rules rejected it)
// - Rule sets with full fan-out so every failing rule is reported at once
// - FormErrors aggregation keyed by field name; a Form attempts every field
//   so the user can fix all problems in one pass
//
// Design policy:
// - Keep only public contracts in the root package; field implementations live
//   under inputs/, calendar value types under period/, declarative form
//   definitions under formdef/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	length := inputs.Int(1, inputs.GreaterThanZero)
//	length.Update("3")
//	n, err := length.Parse()
//
//	errs := goinput.FormErrors{}
//	errs.Put("length", err)
