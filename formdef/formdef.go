// Package formdef loads declarative form definitions and builds runnable
// forms out of them. A definition names each field, picks one of the built-in
// field kinds, and supplies per-kind details (layout, option set, key→label
// choices, default raw text). Definitions typically arrive as YAML written by
// the layer that owns the UI.
package formdef

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Field kinds a definition may name.
const (
	KindText    = "text"
	KindInteger = "integer"
	KindDecimal = "decimal"
	KindDate    = "date"
	KindYear    = "year"
	KindMonth   = "month"
	KindQuarter = "quarter"
	KindSelect  = "select"
	KindChoice  = "choice"
)

// ChoiceDef is one key/label pair of a choice field. A sequence of pairs, not
// a YAML map, so registration order survives decoding.
type ChoiceDef struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// FieldDef describes a single field of a form.
type FieldDef struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Label   string      `yaml:"label,omitempty"`
	Format  string      `yaml:"format,omitempty"`  // Go layout for date fields
	Default string      `yaml:"default,omitempty"` // initial raw text
	Options []string    `yaml:"options,omitempty"` // select kind
	Choices []ChoiceDef `yaml:"choices,omitempty"` // choice kind
}

// FormDef is a named, ordered collection of field definitions.
type FormDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// Parse decodes a definition from YAML, rejecting unknown keys.
func Parse(r io.Reader) (FormDef, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def FormDef
	if err := dec.Decode(&def); err != nil {
		return FormDef{}, fmt.Errorf("formdef: decode: %w", err)
	}
	if err := def.Validate(); err != nil {
		return FormDef{}, err
	}
	return def, nil
}

// ParseBytes decodes a definition from an in-memory YAML document.
func ParseBytes(b []byte) (FormDef, error) {
	return Parse(bytes.NewReader(b))
}

var knownKinds = map[string]bool{
	KindText:    true,
	KindInteger: true,
	KindDecimal: true,
	KindDate:    true,
	KindYear:    true,
	KindMonth:   true,
	KindQuarter: true,
	KindSelect:  true,
	KindChoice:  true,
}

// Validate checks structural requirements: at least one field, unique
// non-empty names, known kinds, and per-kind option requirements.
func (d FormDef) Validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("formdef: %q has no fields", d.Name)
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("formdef: %q has a field with no name", d.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("formdef: duplicate field name %q", f.Name)
		}
		seen[f.Name] = true
		if !knownKinds[f.Kind] {
			return fmt.Errorf("formdef: field %q has unknown kind %q", f.Name, f.Kind)
		}
		if f.Kind == KindSelect && len(f.Options) == 0 {
			return fmt.Errorf("formdef: select field %q has no options", f.Name)
		}
		if f.Kind == KindChoice && len(f.Choices) == 0 {
			return fmt.Errorf("formdef: choice field %q has no choices", f.Name)
		}
	}
	return nil
}
