// Package projector reduces a configuration to the ordered list of settings that
// differ from their defaults.
package projector

import (
	"encoding/json"
	"strconv"

	"github.com/alexisbeaulieu97/stagehand/internal/color"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

// Entry is one customised setting with its value already rendered as text.
type Entry struct {
	Field defaults.Field `json:"field"`
	Value string         `json:"value"`
	// HSL and Foreground are only set for the primary color.
	HSL        string `json:"hsl,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	// Unit is only set for the radius.
	Unit string `json:"unit,omitempty"`
}

// Diff is the ordered projection of a configuration. The zero value is the empty
// diff.
type Diff struct {
	entries []Entry
}

// Entries returns a copy of the entries in canonical field order.
func (d Diff) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Len returns the number of customised fields.
func (d Diff) Len() int { return len(d.entries) }

// Empty reports whether the configuration matched its defaults.
func (d Diff) Empty() bool { return len(d.entries) == 0 }

// Get returns the entry for field if it is present.
func (d Diff) Get(field defaults.Field) (Entry, bool) {
	for _, e := range d.entries {
		if e.Field == field {
			return e, true
		}
	}
	return Entry{}, false
}

// Has reports whether field is customised.
func (d Diff) Has(field defaults.Field) bool {
	_, ok := d.Get(field)
	return ok
}

// Fields lists the customised fields in canonical order.
func (d Diff) Fields() []defaults.Field {
	fields := make([]defaults.Field, len(d.entries))
	for i, e := range d.entries {
		fields[i] = e.Field
	}
	return fields
}

// MarshalJSON encodes the diff as its entry list; an empty diff encodes as [].
func (d Diff) MarshalJSON() ([]byte, error) {
	entries := d.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Project compares cfg against the defaults for currentTheme and returns every
// non-default field in canonical order. It fails atomically with a typed error
// when cfg holds an unrecognized tag or a malformed color.
func Project(cfg options.Config, currentTheme options.Theme) (Diff, error) {
	if !currentTheme.Valid() {
		_, err := options.ParseTheme(string(currentTheme))
		return Diff{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Diff{}, err
	}

	var entries []Entry
	for _, field := range defaults.Fields() {
		if defaults.IsDefault(field, cfg, currentTheme) {
			continue
		}
		entry, err := entryFor(field, cfg)
		if err != nil {
			return Diff{}, err
		}
		entries = append(entries, entry)
	}

	return Diff{entries: entries}, nil
}

func entryFor(field defaults.Field, cfg options.Config) (Entry, error) {
	switch field {
	case defaults.FieldTheme:
		return Entry{Field: field, Value: cfg.Theme.String()}, nil
	case defaults.FieldBackdrop:
		return Entry{Field: field, Value: cfg.Backdrop.String()}, nil
	case defaults.FieldGradient:
		return Entry{Field: field, Value: cfg.Gradient.String()}, nil
	case defaults.FieldAllowClickOutside:
		return Entry{Field: field, Value: strconv.FormatBool(cfg.AllowClickOutside)}, nil
	case defaults.FieldPrimaryColor:
		return primaryEntry(cfg.PrimaryColor)
	case defaults.FieldRadius:
		return Entry{Field: field, Value: options.FormatRadius(cfg.Radius), Unit: options.RadiusUnit}, nil
	default:
		return Entry{}, stagehanderrors.NewValidationError(field.String(), "unknown field", nil)
	}
}

func primaryEntry(hex string) (Entry, error) {
	normalized, err := color.Normalize(hex)
	if err != nil {
		return Entry{}, err
	}
	hsl, err := color.HexToHSL(normalized)
	if err != nil {
		return Entry{}, err
	}
	fg, err := color.ContrastForeground(normalized)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Field: defaults.FieldPrimaryColor, Value: normalized, HSL: hsl, Foreground: fg}, nil
}
