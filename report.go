package goinput

import (
	gojson "github.com/goccy/go-json"
)

// FieldError is the wire form of a single field failure, suitable for a UI
// layer that maps errors back to highlighting. Kind is "parse" or
// "validation"; Message carries the parse cause, Messages the ordered failed
// rule messages.
type FieldError struct {
	Kind     string   `json:"kind"`
	Message  string   `json:"message,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

const (
	kindParse      = "parse"
	kindValidation = "validation"
)

// ReportOf converts a single field's parse error into its wire form.
// Errors outside the two-kind taxonomy are reported as parse failures.
func ReportOf(err error) FieldError {
	if ve, ok := AsValidationErrors(err); ok {
		return FieldError{Kind: kindValidation, Messages: ve}
	}
	if pe, ok := AsParseError(err); ok {
		return FieldError{Kind: kindParse, Message: pe.Cause.Error()}
	}
	return FieldError{Kind: kindParse, Message: err.Error()}
}

// Report converts the whole error map into wire form keyed by field name.
func (fe FormErrors) Report() map[string]FieldError {
	out := make(map[string]FieldError, len(fe))
	for name, err := range fe {
		out[name] = ReportOf(err)
	}
	return out
}

// MarshalJSON renders the error map for the UI layer.
func (fe FormErrors) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(fe.Report())
}
