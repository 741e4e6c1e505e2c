package colorkit

import (
	"fmt"
	"math"
)

// darkLumaThreshold is the YIQ luma below which a color counts as dark.
const darkLumaThreshold = 128

// opaque parses a color and drops any alpha channel.
func opaque(color string) (RGB, error) {
	c, err := ParseColor(color)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB, nil
}

// adjustHSL runs the shared parse → HSL → adjust → RGB → hex pipeline.
func adjustHSL(color string, adjust func(*HSL)) (string, error) {
	rgb, err := opaque(color)
	if err != nil {
		return "", err
	}
	hsl := RGBToHSL(rgb)
	adjust(&hsl)
	return RGBToHex(HSLToRGB(hsl)), nil
}

// Lighten raises lightness by ratio of its current value (L + L*ratio),
// clamped to 0-100.
func Lighten(color string, ratio float64) (string, error) {
	return adjustHSL(color, func(h *HSL) {
		h.L = clamp(h.L+h.L*ratio, 0, 100)
	})
}

// Darken lowers lightness by ratio of its current value (L - L*ratio),
// clamped to 0-100.
func Darken(color string, ratio float64) (string, error) {
	return adjustHSL(color, func(h *HSL) {
		h.L = clamp(h.L-h.L*ratio, 0, 100)
	})
}

// Saturate raises saturation by ratio of its current value, clamped to 0-100.
func Saturate(color string, ratio float64) (string, error) {
	return adjustHSL(color, func(h *HSL) {
		h.S = clamp(h.S+h.S*ratio, 0, 100)
	})
}

// Desaturate lowers saturation by ratio of its current value, clamped to
// 0-100.
func Desaturate(color string, ratio float64) (string, error) {
	return adjustHSL(color, func(h *HSL) {
		h.S = clamp(h.S-h.S*ratio, 0, 100)
	})
}

// AdjustHue rotates the hue by degrees. Negative values rotate backwards and
// any magnitude wraps around the color wheel.
func AdjustHue(color string, degrees float64) (string, error) {
	return adjustHSL(color, func(h *HSL) {
		h.H = rotateHue(h.H, degrees)
	})
}

// ComplementaryColor returns the color opposite on the color wheel. It is
// AdjustHue(color, 180).
func ComplementaryColor(color string) (string, error) {
	return AdjustHue(color, 180)
}

func rotateHue(hue, degrees float64) float64 {
	h := math.Mod(hue+degrees+360, 360)
	if h < 0 {
		h += 360
	}
	// -0.0 and values that round up to 360 both belong at 0.
	if h == 0 || h >= 360 {
		return 0
	}
	return h
}

// MixColors blends two colors channel by channel. ratio is the weight of
// color1: 1 returns color1, 0 returns color2.
func MixColors(color1, color2 string, ratio float64) (string, error) {
	a, err := opaque(color1)
	if err != nil {
		return "", fmt.Errorf("first color: %w", err)
	}
	b, err := opaque(color2)
	if err != nil {
		return "", fmt.Errorf("second color: %w", err)
	}

	mix := func(x, y float64) float64 {
		return math.Round(x*ratio + y*(1-ratio))
	}
	return RGBToHex(RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}), nil
}

// InvertColor replaces each channel with 255 minus its value.
func InvertColor(color string) (string, error) {
	rgb, err := opaque(color)
	if err != nil {
		return "", err
	}
	return RGBToHex(RGB{R: 255 - rgb.R, G: 255 - rgb.G, B: 255 - rgb.B}), nil
}

// Luma returns the YIQ luma of a color: (R*299 + G*587 + B*114) / 1000.
func Luma(c RGB) float64 {
	return (c.R*299 + c.G*587 + c.B*114) / 1000
}

// IsDark reports whether a color's YIQ luma is below 128.
func IsDark(color string) (bool, error) {
	rgb, err := opaque(color)
	if err != nil {
		return false, err
	}
	return Luma(rgb) < darkLumaThreshold, nil
}

// IsLight is the negation of IsDark.
func IsLight(color string) (bool, error) {
	dark, err := IsDark(color)
	if err != nil {
		return false, err
	}
	return !dark, nil
}
