package options

import (
	"math"
	"strconv"
)

const (
	// MinRadius and MaxRadius bound the corner radius in rem.
	MinRadius = 0.0
	MaxRadius = 2.0
	// RadiusStep is the slider increment.
	RadiusStep = 0.1

	// RadiusUnit is appended to the radius wherever it is rendered.
	RadiusUnit = "rem"
)

// Config is one snapshot of the modal settings. It is passed by value into every
// render; nothing downstream keeps a reference to it.
type Config struct {
	Theme             Theme    `yaml:"theme" toml:"theme" json:"theme" validate:"theme"`
	Backdrop          Backdrop `yaml:"backdrop" toml:"backdrop" json:"backdrop" validate:"backdrop"`
	Gradient          Gradient `yaml:"gradient" toml:"gradient" json:"gradient" validate:"gradient"`
	AllowClickOutside bool     `yaml:"allowClickOutside" toml:"allowClickOutside" json:"allowClickOutside"`
	PrimaryColor      string   `yaml:"primaryColor" toml:"primaryColor" json:"primaryColor" validate:"hexcolor6"`
	Radius            float64  `yaml:"radius" toml:"radius" json:"radius" validate:"gte=0,lte=2,radius_step"`
}

// SnapRadius rounds r to the nearest slider step and clamps it into range.
func SnapRadius(r float64) float64 {
	snapped := math.Round(r*10) / 10
	return math.Min(MaxRadius, math.Max(MinRadius, snapped))
}

// FormatRadius renders the radius verbatim with the smallest exact representation.
func FormatRadius(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func onRadiusStep(r float64) bool {
	return math.Abs(r*10-math.Round(r*10)) < 1e-9
}
