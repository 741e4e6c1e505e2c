package colorkit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned for "#" colors with a bad body.
	ErrInvalidHex = errors.New("invalid hex format")

	// ErrInvalidRGB is returned for "rgb" prefixed strings that do not match
	// the rgb()/rgba() grammar.
	ErrInvalidRGB = errors.New("invalid RGB format")

	// ErrUnsupportedFormat is returned when a string is neither hex, rgb()
	// nor a known color name.
	ErrUnsupportedFormat = errors.New("unsupported color format")
)

// rgbSpace matches ECMAScript whitespace; RE2's \s leaves out \v and the
// Unicode spaces.
const rgbSpace = `[\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]*`

var rgbPattern = regexp.MustCompile(strings.NewReplacer("_", rgbSpace).Replace(
	`^rgba?\(_([\d.]+)_,_([\d.]+)_,_([\d.]+)_(?:,_([\d.]+))?_\)$`))

// ParseColor converts a color string into its channel values.
//
// The format is chosen by prefix, in order: "#" selects hex, "rgb" selects
// the functional notation, and anything else is looked up as a color name.
// The first matching prefix decides; a malformed "#..." string is never
// retried as a name.
//
// The result carries an alpha channel (HasAlpha) when:
//   - a hex body has 4 or 8 digits
//   - an rgba() alpha is written and is not exactly 1 after clamping
//
// An explicit alpha of 1 collapses to a plain RGB result, while 0.999 is
// kept.
func ParseColor(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBString(s)
	}

	if rgb, ok := lookupName(s); ok {
		return Color{RGB: rgb, Alpha: 1}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// MustParseColor is like ParseColor but panics if the string cannot be
// parsed.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex decodes a hex body without its leading "#".
func parseHex(body string) (Color, error) {
	var pairs [4]string
	switch len(body) {
	case 3, 4:
		for i := 0; i < len(body); i++ {
			pairs[i] = strings.Repeat(body[i:i+1], 2)
		}
	case 6, 8:
		for i := 0; i < len(body)/2; i++ {
			pairs[i] = body[i*2 : i*2+2]
		}
	default:
		return Color{}, fmt.Errorf("%w: %q has %d digits, want 3, 4, 6 or 8", ErrInvalidHex, "#"+body, len(body))
	}

	channels := len(body)
	if channels > 4 {
		channels /= 2
	}

	var values [4]float64
	for i := 0; i < channels; i++ {
		v, err := strconv.ParseUint(pairs[i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad digits %q in %q", ErrInvalidHex, pairs[i], "#"+body)
		}
		values[i] = float64(v)
	}

	c := Color{RGB: RGB{R: values[0], G: values[1], B: values[2]}, Alpha: 1}
	if channels == 4 {
		c.Alpha = values[3] / 255
		c.HasAlpha = true
	}
	return c, nil
}

// parseRGBString decodes rgb(r, g, b) and rgba(r, g, b, a).
func parseRGBString(s string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidRGB, s)
	}

	var rgb [3]float64
	for i := range rgb {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad channel %q in %q", ErrInvalidRGB, m[i+1], s)
		}
		rgb[i] = clamp(v, 0, 255)
	}

	c := Color{RGB: RGB{R: rgb[0], G: rgb[1], B: rgb[2]}, Alpha: 1}
	if m[4] == "" {
		return c, nil
	}

	a, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad alpha %q in %q", ErrInvalidRGB, m[4], s)
	}
	if a = clamp(a, 0, 1); a != 1 {
		c.Alpha = a
		c.HasAlpha = true
	}
	return c, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
