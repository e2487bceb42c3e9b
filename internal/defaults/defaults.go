// Package defaults owns the baseline configuration and the single rule deciding
// whether a field counts as customised. Both renderers reach that decision
// through IsDefault so they can never disagree.
package defaults

import (
	"strings"

	"github.com/alexisbeaulieu97/stagehand/internal/options"
)

// Field names one configurable setting.
type Field int

const (
	FieldTheme Field = iota
	FieldBackdrop
	FieldGradient
	FieldAllowClickOutside
	FieldPrimaryColor
	FieldRadius
)

var fieldNames = [...]string{
	FieldTheme:             "theme",
	FieldBackdrop:          "backdrop",
	FieldGradient:          "gradient",
	FieldAllowClickOutside: "allowClickOutside",
	FieldPrimaryColor:      "primaryColor",
	FieldRadius:            "radius",
}

// Fields returns every field in canonical render order.
func Fields() []Field {
	return []Field{FieldTheme, FieldBackdrop, FieldGradient, FieldAllowClickOutside, FieldPrimaryColor, FieldRadius}
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// MarshalText encodes the field by its configuration key.
func (f Field) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

const globalPrimaryColor = "#6366f1"

var baseline = options.Config{
	Theme:             options.ThemeLight,
	Backdrop:          options.BackdropDefault,
	Gradient:          options.GradientAnimated,
	AllowClickOutside: true,
	PrimaryColor:      globalPrimaryColor,
	Radius:            0.5,
}

// Themes without an entry fall back to the global primary color.
var themePrimaryColors = map[options.Theme]string{
	options.ThemeDark:     "#818cf8",
	options.ThemeMidnight: "#a855f7",
	options.ThemeMinimal:  "#000000",
	options.ThemeOcean:    "#0ea5e9",
	options.ThemeSunset:   "#f97316",
}

// Baseline returns a copy of the global default configuration.
func Baseline() options.Config {
	return baseline
}

// PrimaryColorFor returns the natural brand color of a theme.
func PrimaryColorFor(theme options.Theme) string {
	if c, ok := themePrimaryColors[theme]; ok {
		return c
	}
	return globalPrimaryColor
}

// ForTheme returns the baseline with the given theme and that theme's brand color.
func ForTheme(theme options.Theme) options.Config {
	cfg := baseline
	cfg.Theme = theme
	cfg.PrimaryColor = PrimaryColorFor(theme)
	return cfg
}

// IsDefault reports whether field holds its default value in cfg. The primary
// color is compared case-insensitively against the default of currentTheme;
// every other field is compared against the global baseline.
func IsDefault(field Field, cfg options.Config, currentTheme options.Theme) bool {
	switch field {
	case FieldTheme:
		return cfg.Theme == baseline.Theme
	case FieldBackdrop:
		return cfg.Backdrop == baseline.Backdrop
	case FieldGradient:
		return cfg.Gradient == baseline.Gradient
	case FieldAllowClickOutside:
		return cfg.AllowClickOutside == baseline.AllowClickOutside
	case FieldPrimaryColor:
		return sameColor(cfg.PrimaryColor, PrimaryColorFor(currentTheme))
	case FieldRadius:
		return cfg.Radius == baseline.Radius
	default:
		return true
	}
}

func sameColor(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "#"), strings.TrimPrefix(b, "#"))
}
