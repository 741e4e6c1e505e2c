package colorkit

// Report describes one color in every representation this package knows.
type Report struct {
	Hex      string  `json:"hex"`       // "#RRGGBB", alpha excluded
	RGB      RGB     `json:"rgb"`       // Channels 0-255
	Alpha    float64 `json:"alpha"`     // 0-1, 1 when the input had none
	HasAlpha bool    `json:"has_alpha"` // Whether the input carried alpha
	HSL      HSL     `json:"hsl"`       // Hue/saturation/lightness
	Luma     float64 `json:"luma"`      // YIQ luma, 0-255
	Dark     bool    `json:"dark"`      // Luma below 128
}

// Describe builds a Report for a parsed color.
func Describe(c Color) Report {
	luma := Luma(c.RGB)
	return Report{
		Hex:      RGBToHex(c.RGB),
		RGB:      c.RGB,
		Alpha:    c.Alpha,
		HasAlpha: c.HasAlpha,
		HSL:      RGBToHSL(c.RGB),
		Luma:     luma,
		Dark:     luma < darkLumaThreshold,
	}
}
