// Package color converts brand colors between the hex form users pick and the
// "H S% L%" triple the onstage stylesheet variables expect.
//
// ContrastForeground uses a plain perceived-brightness threshold
// (0.299R + 0.587G + 0.114B > 128 selects black text). It is not a WCAG
// contrast-ratio computation: there is no gamma correction and the threshold
// is fixed.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

const (
	// BlackForeground is the HSL triple for black text.
	BlackForeground = "0 0% 0%"
	// WhiteForeground is the HSL triple for white text.
	WhiteForeground = "0 0% 100%"

	brightnessThreshold = 128
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB holds 8-bit channel values.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// brightnessMilli is 0.299R + 0.587G + 0.114B scaled by 1000, keeping the
// threshold comparison in integer arithmetic.
func (c RGB) brightnessMilli() int {
	return int(c.R)*299 + int(c.G)*587 + int(c.B)*114
}

// Normalize returns the canonical "#rrggbb" lowercase form of a hex color.
func Normalize(hex string) (string, error) {
	if !hexPattern.MatchString(hex) {
		return "", stagehanderrors.NewInvalidColorFormatError(hex, nil)
	}
	return "#" + strings.ToLower(strings.TrimPrefix(hex, "#")), nil
}

// Valid reports whether hex is a 6-digit hex color with an optional leading '#'.
func Valid(hex string) bool {
	return hexPattern.MatchString(hex)
}

// ParseHex parses a 6-digit hex color into its channels.
func ParseHex(hex string) (RGB, error) {
	c, err := parse(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// HexToHSL converts a 6-digit hex color to an "H S% L%" string with whole-number
// components.
func HexToHSL(hex string) (string, error) {
	c, err := parse(hex)
	if err != nil {
		return "", err
	}

	h, s, l := c.Hsl()
	hue := int(math.Round(h)) % 360
	return fmt.Sprintf("%d %d%% %d%%", hue, int(math.Round(s*100)), int(math.Round(l*100))), nil
}

// ContrastForeground picks black or white text for the given background color.
func ContrastForeground(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	if rgb.brightnessMilli() > brightnessThreshold*1000 {
		return BlackForeground, nil
	}
	return WhiteForeground, nil
}

// go-colorful also accepts 3-digit shorthand, so the strict pattern runs first.
func parse(hex string) (colorful.Color, error) {
	normalized, err := Normalize(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return colorful.Color{}, stagehanderrors.NewInvalidColorFormatError(hex, err)
	}
	return c, nil
}
