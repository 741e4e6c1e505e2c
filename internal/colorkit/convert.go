package colorkit

import (
	"fmt"
	"math"
	"strconv"
)

// RGBToHSL converts an RGB color to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min, max and their difference (delta)
//  3. Calculate Hue from whichever channel is max (0 for grays)
//  4. Calculate Lightness as (max + min) / 2
//  5. Calculate Saturation as delta / (1 - |2L - 1|) (0 for grays)
//
// Outputs are rounded to 15 decimal places and are otherwise unrounded;
// callers needing display precision round separately.
func RGBToHSL(c RGB) HSL {
	r, g, b := c.R/255, c.G/255, c.B/255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	if delta > 0 {
		switch max {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
	}
	h = math.Mod(h*60+360, 360)

	l := (max + min) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{H: round15(h), S: round15(s * 100), L: round15(l * 100)}
}

// HSLToRGB converts an HSL color to RGB, rounding each channel to the
// nearest integer.
func HSLToRGB(c HSL) RGB {
	s, l := c.S/100, c.L/100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(c.H/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case c.H < 60:
		r, g, b = chroma, x, 0
	case c.H < 120:
		r, g, b = x, chroma, 0
	case c.H < 180:
		r, g, b = 0, chroma, x
	case c.H < 240:
		r, g, b = 0, x, chroma
	case c.H < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: math.Round((r + m) * 255),
		G: math.Round((g + m) * 255),
		B: math.Round((b + m) * 255),
	}
}

// RGBToHex renders an RGB color as "#RRGGBB" with uppercase digits.
//
// Alpha is never encoded. Channels are rounded to the nearest integer and
// held to 0-255 so that fractional rgb() input still yields two digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", toByte(c.R), toByte(c.G), toByte(c.B))
}

// Bytes returns the channels rounded to 8-bit values, the same way RGBToHex
// encodes them.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

// round15 rounds to 15 digits after the decimal point.
func round15(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 15, 64), 64)
	if err != nil {
		return v
	}
	return r
}
