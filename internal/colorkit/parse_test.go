package colorkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		// Hex
		{"hex 6 digit", "#3498db", []float64{52, 152, 219}},
		{"hex 6 digit uppercase", "#FF5733", []float64{255, 87, 51}},
		{"hex 8 digit", "#ff5733cc", []float64{255, 87, 51, 0.8}},
		{"hex 3 digit", "#abc", []float64{170, 187, 204}},
		{"hex 4 digit", "#abcd", []float64{170, 187, 204, 221.0 / 255}},
		{"hex opaque alpha kept", "#000000ff", []float64{0, 0, 0, 1}},

		// Functional
		{"rgb", "rgb(52, 152, 219)", []float64{52, 152, 219}},
		{"rgb no spaces", "rgb(52,152,219)", []float64{52, 152, 219}},
		{"rgba", "rgba(52, 152, 219, 0.5)", []float64{52, 152, 219, 0.5}},
		{"rgba no spaces", "rgba(52,152,219,0.5)", []float64{52, 152, 219, 0.5}},
		{"rgba alpha one collapses", "rgba(52, 152, 219, 1)", []float64{52, 152, 219}},
		{"rgba alpha just below one", "rgba(52, 152, 219, 0.999)", []float64{52, 152, 219, 0.999}},
		{"rgba alpha clamped to one collapses", "rgba(52, 152, 219, 2)", []float64{52, 152, 219}},
		{"rgba alpha zero", "rgba(52, 152, 219, 0)", []float64{52, 152, 219, 0}},
		{"rgb with alpha", "rgb(1, 2, 3, 0.25)", []float64{1, 2, 3, 0.25}},
		{"rgb channel clamped", "rgb(300, 20, 0)", []float64{255, 20, 0}},
		{"rgb decimals", "rgb(10.5, 20, 30)", []float64{10.5, 20, 30}},
		{"rgb padded", "rgb(  1 ,2 ,  3  )", []float64{1, 2, 3}},
		{"rgb vertical tab", "rgb(1,2,3\v)", []float64{1, 2, 3}},
		{"rgb no-break space", "rgb(\u00a01, 2,\ufeff3)", []float64{1, 2, 3}},
		{"rgb tabs and newlines", "rgba(\t1,\n2,\r3,\f0.5)", []float64{1, 2, 3, 0.5}},

		// Named
		{"named", "red", []float64{255, 0, 0}},
		{"named uppercase", "RED", []float64{255, 0, 0}},
		{"named mixed case", "CornflowerBlue", []float64{100, 149, 237}},
		{"named css green", "green", []float64{0, 128, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Channels())
			assert.Equal(t, len(tt.want) == 4, c.HasAlpha)
		})
	}
}

func TestParseColor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"hex too short", "#ff", ErrInvalidHex},
		{"hex five digits", "#12345", ErrInvalidHex},
		{"hex seven digits", "#fffffff", ErrInvalidHex},
		{"hex empty body", "#", ErrInvalidHex},
		{"hex bad digit", "#gggggg", ErrInvalidHex},
		{"hex bad shorthand digit", "#fgf", ErrInvalidHex},
		{"rgb missing channel", "rgb(1, 2)", ErrInvalidRGB},
		{"rgb negative", "rgb(-5, 0, 0)", ErrInvalidRGB},
		{"rgb unterminated", "rgb(1, 2, 3", ErrInvalidRGB},
		{"rgb bad number", "rgb(1.2.3, 0, 0)", ErrInvalidRGB},
		{"rgb trailing text", "rgb(1, 2, 3) x", ErrInvalidRGB},
		{"rgb prefix only", "rgbish", ErrInvalidRGB},
		{"unknown name", "invalidColor", ErrUnsupportedFormat},
		{"empty", "", ErrUnsupportedFormat},
		{"bare hex", "ff0000", ErrUnsupportedFormat},
		{"uppercase rgb", "RGB(1, 2, 3)", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColor(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseColor_UnsupportedMessage(t *testing.T) {
	_, err := ParseColor("invalidColor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported color format")
}

func TestMustParseColor(t *testing.T) {
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, MustParseColor("red").RGB)
	assert.Panics(t, func() { MustParseColor("nope") })
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "#3498DB", MustParseColor("#3498db").String())
	assert.Equal(t, "rgba(52, 152, 219, 0.5)", MustParseColor("rgba(52,152,219,0.5)").String())
}

func TestColor_RGBA(t *testing.T) {
	c := MustParseColor("#3498db")
	assert.Equal(t, 1.0, c.RGBA().A)
	assert.Equal(t, 0.8, MustParseColor("#ff5733cc").RGBA().A)
}

func TestNames(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "aliceblue")
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	for _, n := range names {
		_, err := ParseColor(n)
		assert.NoError(t, err, n)
	}
}
