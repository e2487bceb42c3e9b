// Package options defines the closed set of modal settings a user can customise.
package options

import (
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

// Theme is one of the onstage visual presets.
type Theme string

const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeGlass    Theme = "glass"
	ThemeMidnight Theme = "midnight"
	ThemeMinimal  Theme = "minimal"
	ThemeOcean    Theme = "ocean"
	ThemeSunset   Theme = "sunset"
)

var themes = []Theme{ThemeLight, ThemeDark, ThemeGlass, ThemeMidnight, ThemeMinimal, ThemeOcean, ThemeSunset}

var themeLabels = map[Theme]string{
	ThemeLight:    "Light (Default)",
	ThemeDark:     "Dark",
	ThemeGlass:    "Glass",
	ThemeMidnight: "Midnight",
	ThemeMinimal:  "Minimal",
	ThemeOcean:    "Ocean",
	ThemeSunset:   "Sunset",
}

// Themes returns every theme in presentation order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ParseTheme converts a tag into a Theme, rejecting anything outside the closed set.
func ParseTheme(value string) (Theme, error) {
	for _, t := range themes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", stagehanderrors.NewUnrecognizedOptionError("theme", value, toStrings(themes))
}

func (t Theme) String() string { return string(t) }

// Label returns the human readable name shown by configurators.
func (t Theme) Label() string { return themeLabels[t] }

// Valid reports whether t belongs to the closed set.
func (t Theme) Valid() bool { return themeLabels[t] != "" }

// UnmarshalText lets YAML, TOML and JSON decoders reject unknown themes while decoding.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText encodes the tag verbatim.
func (t Theme) MarshalText() ([]byte, error) { return []byte(t), nil }

// Backdrop controls the overlay drawn behind the modal.
type Backdrop string

const (
	BackdropDefault     Backdrop = "default"
	BackdropBlur        Backdrop = "blur"
	BackdropTransparent Backdrop = "transparent"
)

var backdrops = []Backdrop{BackdropDefault, BackdropBlur, BackdropTransparent}

var backdropLabels = map[Backdrop]string{
	BackdropDefault:     "Dark (Default)",
	BackdropBlur:        "Blur",
	BackdropTransparent: "Transparent",
}

// Backdrops returns every backdrop in presentation order.
func Backdrops() []Backdrop {
	return append([]Backdrop(nil), backdrops...)
}

// ParseBackdrop converts a tag into a Backdrop.
func ParseBackdrop(value string) (Backdrop, error) {
	for _, b := range backdrops {
		if string(b) == value {
			return b, nil
		}
	}
	return "", stagehanderrors.NewUnrecognizedOptionError("backdrop", value, toStrings(backdrops))
}

func (b Backdrop) String() string { return string(b) }
func (b Backdrop) Label() string  { return backdropLabels[b] }
func (b Backdrop) Valid() bool    { return backdropLabels[b] != "" }

func (b *Backdrop) UnmarshalText(text []byte) error {
	parsed, err := ParseBackdrop(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Backdrop) MarshalText() ([]byte, error) { return []byte(b), nil }

// Gradient controls the modal background gradient.
type Gradient string

const (
	GradientAnimated Gradient = "animated"
	GradientStatic   Gradient = "static"
	GradientNone     Gradient = "none"
)

var gradients = []Gradient{GradientAnimated, GradientStatic, GradientNone}

var gradientLabels = map[Gradient]string{
	GradientAnimated: "Animated (Default)",
	GradientStatic:   "Static",
	GradientNone:     "None",
}

// Gradients returns every gradient mode in presentation order.
func Gradients() []Gradient {
	return append([]Gradient(nil), gradients...)
}

// ParseGradient converts a tag into a Gradient.
func ParseGradient(value string) (Gradient, error) {
	for _, g := range gradients {
		if string(g) == value {
			return g, nil
		}
	}
	return "", stagehanderrors.NewUnrecognizedOptionError("gradient", value, toStrings(gradients))
}

func (g Gradient) String() string { return string(g) }
func (g Gradient) Label() string  { return gradientLabels[g] }
func (g Gradient) Valid() bool    { return gradientLabels[g] != "" }

func (g *Gradient) UnmarshalText(text []byte) error {
	parsed, err := ParseGradient(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Gradient) MarshalText() ([]byte, error) { return []byte(g), nil }

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
