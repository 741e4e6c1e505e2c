// Package colorkit parses color strings, converts between RGB, HSL and hex,
// and derives new colors from existing ones.
//
// Every function in this package is a pure mapping from its arguments to its
// result. There is no shared mutable state, so all functions are safe for
// concurrent use without synchronization.
//
// # Accepted Formats
//
// ParseColor understands:
//   - Hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (case-insensitive digits)
//   - Functional: "rgb(r, g, b)" and "rgba(r, g, b, a)" with integer or
//     decimal components
//   - Named: CSS/SVG keywords such as "red" or "CornflowerBlue"
//     (case-insensitive)
//
// # Color Models
//
//   - RGB: channels 0-255
//   - Alpha: 0-1, only present when the input carried it
//   - HSL: hue 0-360 (exclusive), saturation and lightness 0-100
//
// # Transforms
//
// Lighten, Darken, Saturate, Desaturate, AdjustHue, ComplementaryColor,
// MixColors and InvertColor all take a color string and return an uppercase
// "#RRGGBB" string. Alpha is dropped before any transform runs. IsDark and
// IsLight classify a color by its YIQ luma.
//
// # Errors
//
// Parsing fails with one of three sentinel errors, which callers can test
// with errors.Is:
//   - ErrInvalidHex: a "#" body whose length is not 3, 4, 6 or 8, or that
//     contains a non-hex digit
//   - ErrInvalidRGB: an "rgb" prefixed string that does not match the
//     rgb()/rgba() grammar
//   - ErrUnsupportedFormat: anything else that is not a known color name
//
// Transforms return exactly the parser's errors and perform no other
// validation; out-of-range ratios and degrees pass straight through.
package colorkit
