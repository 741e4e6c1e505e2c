package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorkit"
)

const (
	// MaxSwatchSize is the largest tile edge RenderSwatch accepts, in pixels.
	MaxSwatchSize = 512

	// MaxSwatchColors is the most tiles one strip may hold.
	MaxSwatchColors = 64
)

// SwatchResult contains a rendered color strip.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"` // "#RRGGBB" of each tile, left to right
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
}

// RenderSwatch draws one size×size tile per color, left to right, and
// returns the strip as a base64 PNG.
//
// Any alpha in the input is ignored; tiles are always opaque. Tiles are
// filled in place on a single canvas.
func RenderSwatch(colors []string, size int) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, errors.New("at least one color is required")
	}
	if len(colors) > MaxSwatchColors {
		return nil, fmt.Errorf("too many colors: %d, at most %d per swatch", len(colors), MaxSwatchColors)
	}
	if size <= 0 || size > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size %d out of range 1-%d", size, MaxSwatchSize)
	}

	canvas := imaging.New(size*len(colors), size, color.White)
	hexes := make([]string, 0, len(colors))

	for i, s := range colors {
		c, err := colorkit.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		r, g, b := c.RGB.Bytes()
		tile := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(canvas, tile, image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: 0xff}), image.Point{}, draw.Src)
		hexes = append(hexes, colorkit.RGBToHex(c.RGB))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
