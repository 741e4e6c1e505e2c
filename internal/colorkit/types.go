package colorkit

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned by Validate for channels outside their model's
// range.
var ErrOutOfRange = errors.New("channel out of range")

// RGB is a color in the RGB model.
//
// Channels range from 0 to 255. They are integral for anything produced by
// hex parsing, named lookup or HSLToRGB; rgb() input may carry fractions.
type RGB struct {
	R float64 `json:"r"` // Red (0-255)
	G float64 `json:"g"` // Green (0-255)
	B float64 `json:"b"` // Blue (0-255)
}

// Validate reports whether every channel lies in 0-255.
func (c RGB) Validate() error {
	for _, ch := range []struct {
		name string
		v    float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if !(ch.v >= 0 && ch.v <= 255) {
			return fmt.Errorf("%w: %s=%v, want 0-255", ErrOutOfRange, ch.name, ch.v)
		}
	}
	return nil
}

// RGBA is an RGB color with an opacity in [0,1].
type RGBA struct {
	RGB
	A float64 `json:"a"` // Alpha (0 = transparent, 1 = opaque)
}

// HSL is a color in the HSL (Hue, Saturation, Lightness) model.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees, 360 exclusive
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

// Validate reports whether H lies in [0,360) and S and L in 0-100.
func (c HSL) Validate() error {
	if !(c.H >= 0 && c.H < 360) {
		return fmt.Errorf("%w: h=%v, want 0-360 (exclusive)", ErrOutOfRange, c.H)
	}
	if !(c.S >= 0 && c.S <= 100) {
		return fmt.Errorf("%w: s=%v, want 0-100", ErrOutOfRange, c.S)
	}
	if !(c.L >= 0 && c.L <= 100) {
		return fmt.Errorf("%w: l=%v, want 0-100", ErrOutOfRange, c.L)
	}
	return nil
}

// Color is the result of ParseColor.
//
// HasAlpha reports whether the parsed input yields a four-channel (RGBA)
// result. When it is false, Alpha is 1 and callers should treat the value as
// a plain RGB triple.
type Color struct {
	RGB      RGB     `json:"rgb"`
	Alpha    float64 `json:"alpha"`
	HasAlpha bool    `json:"has_alpha"`
}

// RGBA returns the color as a four-channel value. Colors without an alpha
// channel report full opacity.
func (c Color) RGBA() RGBA {
	return RGBA{RGB: c.RGB, A: c.Alpha}
}

// Channels returns the color as a slice of three or four numbers, matching
// the shape of the parsed input.
func (c Color) Channels() []float64 {
	if c.HasAlpha {
		return []float64{c.RGB.R, c.RGB.G, c.RGB.B, c.Alpha}
	}
	return []float64{c.RGB.R, c.RGB.G, c.RGB.B}
}

// String renders "#RRGGBB" for opaque colors and "rgba(r, g, b, a)" when an
// alpha channel is present.
func (c Color) String() string {
	if !c.HasAlpha {
		return RGBToHex(c.RGB)
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		formatNumber(c.RGB.R), formatNumber(c.RGB.G), formatNumber(c.RGB.B), formatNumber(c.Alpha))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
