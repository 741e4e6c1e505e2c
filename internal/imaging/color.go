package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
)

// SampleResult is the color of a single pixel.
type SampleResult struct {
	X     int             `json:"x"`
	Y     int             `json:"y"`
	Color colorkit.Report `json:"color"`
}

// SampleColor reads the pixel at (x, y) and describes it with colorkit.
//
// Coordinates are 0-based with origin at top-left. The pixel is read
// un-premultiplied, so a half-transparent red reports RGB (255,0,0) with
// alpha 0.5 rather than a darkened red.
//
// Returns an error if (x, y) is outside the image bounds.
func SampleColor(img image.Image, x, y int) (*SampleResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c := colorkit.Color{
		RGB:   colorkit.RGB{R: float64(px.R), G: float64(px.G), B: float64(px.B)},
		Alpha: 1,
	}
	if px.A != 0xff {
		c.Alpha = float64(px.A) / 255
		c.HasAlpha = true
	}

	return &SampleResult{X: x, Y: y, Color: colorkit.Describe(c)}, nil
}
