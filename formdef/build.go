package formdef

import (
	"github.com/shopspring/decimal"

	goinput "github.com/reoring/goinput"
	"github.com/reoring/goinput/inputs"
	"github.com/reoring/goinput/period"
)

// Form is a built definition: heterogeneous fields behind one dynamic,
// name-routed surface. Update routes raw text by update path; Parse attempts
// every field unconditionally and either returns all parsed values or the
// complete per-field error map.
type Form struct {
	name    string
	names   []string
	parsers map[string]func() (any, error)
	updates map[string]func(raw string)
}

// Build constructs the form a definition describes. Date-like defaults read
// the clock once, here. Def must already validate.
func Build(def FormDef, clock goinput.Clock) (*Form, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	f := &Form{
		name:    def.Name,
		parsers: make(map[string]func() (any, error), len(def.Fields)),
		updates: make(map[string]func(raw string), len(def.Fields)),
	}
	for _, fd := range def.Fields {
		f.names = append(f.names, fd.Name)
		switch fd.Kind {
		case KindText:
			in := inputs.Text("")
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindInteger:
			in := inputs.Int(0)
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindDecimal:
			in := inputs.Decimal(decimal.Zero)
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindDate:
			layout := fd.Format
			if layout == "" {
				layout = period.ISODate
			}
			in := inputs.NewDate(period.FromTime(clock()), layout)
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindYear:
			in := inputs.ThisYear(clock)
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindSelect:
			in := inputs.Strings("", fd.Options...)
			f.addAtomic(fd, in.Update, wrap(in.Parse))
		case KindChoice:
			opts := make([]inputs.Option[string, string], len(fd.Choices))
			for i, c := range fd.Choices {
				opts[i] = inputs.Option[string, string]{Key: c.Key, Label: c.Label}
			}
			in := inputs.NewRelationalSelect(fd.Default, opts, inputs.StringConv())
			f.updates[fd.Name] = in.Update
			f.parsers[fd.Name] = wrap(in.Parse)
		case KindMonth:
			in := inputs.CurrentMonth(clock)
			f.updates[fd.Name+".year"] = func(raw string) { in.Update(inputs.MonthYear(raw)) }
			f.updates[fd.Name+".month"] = func(raw string) { in.Update(inputs.MonthNumber(raw)) }
			f.parsers[fd.Name] = wrap(in.Parse)
		case KindQuarter:
			in := inputs.CurrentQuarter(clock)
			f.updates[fd.Name+".year"] = func(raw string) { in.Update(inputs.QuarterYear(raw)) }
			f.updates[fd.Name+".quarter"] = func(raw string) { in.Update(inputs.QuarterNumber(raw)) }
			f.parsers[fd.Name] = wrap(in.Parse)
		}
	}
	return f, nil
}

// addAtomic registers a single-raw field, applying the definition's default
// raw text when present.
func (f *Form) addAtomic(fd FieldDef, update func(string), parse func() (any, error)) {
	if fd.Default != "" {
		update(fd.Default)
	}
	f.updates[fd.Name] = update
	f.parsers[fd.Name] = parse
}

func wrap[O any](parse func() (O, error)) func() (any, error) {
	return func() (any, error) {
		v, err := parse()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Name returns the definition's form name.
func (f *Form) Name() string { return f.name }

// FieldNames returns the logical field names in definition order.
func (f *Form) FieldNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Update routes raw text to the field (or composite child) registered under
// the given update path. It reports whether the path named anything;
// composite children register as "<name>.year", "<name>.month" and
// "<name>.quarter".
func (f *Form) Update(path, raw string) bool {
	fn, ok := f.updates[path]
	if !ok {
		return false
	}
	fn(raw)
	return true
}

// Parse attempts every field and returns the values keyed by field name, or
// the complete goinput.FormErrors when any field failed. Fields are always
// all attempted; an early failure never short-circuits later fields.
func (f *Form) Parse() (map[string]any, error) {
	values := make(map[string]any, len(f.names))
	errs := goinput.FormErrors{}
	for _, name := range f.names {
		v, err := f.parsers[name]()
		if err != nil {
			errs.Put(name, err)
			continue
		}
		values[name] = v
	}
	if !errs.Empty() {
		return nil, errs
	}
	return values, nil
}
