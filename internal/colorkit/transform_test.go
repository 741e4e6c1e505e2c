package colorkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	steelBlue = "#3498db"
	alizarin  = "#e74c3c"
)

var sampleColors = []string{
	steelBlue, alizarin, "#000", "#fff", "#808080", "#ff5733cc",
	"rgb(12, 200, 99)", "rgba(250, 1, 128, 0.3)", "navy", "Gold", "teal",
}

func TestTransforms_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"lighten", func() (string, error) { return Lighten(steelBlue, 0.2) }, "#62AFE3"},
		{"darken", func() (string, error) { return Darken(steelBlue, 0.2) }, "#217BB8"},
		{"adjust hue", func() (string, error) { return AdjustHue(steelBlue, 45) }, "#4D34DB"},
		{"saturate", func() (string, error) { return Saturate(steelBlue, 0.3) }, "#1B9DF4"},
		{"desaturate", func() (string, error) { return Desaturate(steelBlue, 0.3) }, "#4D93C2"},
		{"complementary", func() (string, error) { return ComplementaryColor(steelBlue) }, "#DB7734"},
		{"mix", func() (string, error) { return MixColors(steelBlue, alizarin, 0.5) }, "#8E728C"},
		{"invert", func() (string, error) { return InvertColor(steelBlue) }, "#CB6724"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransforms_OutputFormat(t *testing.T) {
	for _, c := range sampleColors {
		got, err := Lighten(c, 0.1)
		require.NoError(t, err, c)
		assert.Len(t, got, 7, c)
		assert.Equal(t, strings.ToUpper(got), got, c)
		assert.True(t, strings.HasPrefix(got, "#"), c)
	}
}

func TestTransforms_Clamping(t *testing.T) {
	got, err := Lighten(steelBlue, 5)
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", got)

	got, err = Darken(steelBlue, 5)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)

	// Saturation is held at 100; lightness is unchanged.
	got, err = Saturate("#ff0000", 1)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", got)

	got, err = Desaturate(steelBlue, 1)
	require.NoError(t, err)
	gray := MustParseColor(got).RGB
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}

func TestTransforms_ZeroRatioIsIdentity(t *testing.T) {
	for _, fn := range []func(string, float64) (string, error){Lighten, Darken, Saturate, Desaturate} {
		got, err := fn(steelBlue, 0)
		require.NoError(t, err)
		assert.Equal(t, "#3498DB", got)
	}
}

func TestTransforms_DropAlpha(t *testing.T) {
	got, err := InvertColor("#ff5733cc")
	require.NoError(t, err)
	assert.Equal(t, "#00A8CC", got)
}

func TestAdjustHue_Wraparound(t *testing.T) {
	for _, c := range sampleColors {
		zero, err := AdjustHue(c, 0)
		require.NoError(t, err)

		for _, deg := range []float64{360, -360, 720, -720} {
			got, err := AdjustHue(c, deg)
			require.NoError(t, err)
			assert.Equal(t, zero, got, "%s rotated %v", c, deg)
		}
	}
}

func TestAdjustHue_Negative(t *testing.T) {
	back, err := AdjustHue(steelBlue, -45)
	require.NoError(t, err)
	forward, err := AdjustHue(steelBlue, 315)
	require.NoError(t, err)
	assert.Equal(t, forward, back)
}

func TestComplementaryColor_IsHalfTurn(t *testing.T) {
	for _, c := range sampleColors {
		comp, err := ComplementaryColor(c)
		require.NoError(t, err)
		half, err := AdjustHue(c, 180)
		require.NoError(t, err)
		assert.Equal(t, half, comp, c)
	}
}

func TestMixColors(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"all first", 1, "#3498DB"},
		{"all second", 0, "#E74C3C"},
		{"quarter", 0.25, "#BA5F64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MixColors(steelBlue, alizarin, tt.ratio)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMixColors_Errors(t *testing.T) {
	_, err := MixColors("nope", alizarin, 0.5)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "first color")

	_, err = MixColors(steelBlue, "#12", 0.5)
	assert.ErrorIs(t, err, ErrInvalidHex)
	assert.Contains(t, err.Error(), "second color")
}

func TestInvertColor_Involution(t *testing.T) {
	for _, c := range sampleColors {
		once, err := InvertColor(c)
		require.NoError(t, err)
		twice, err := InvertColor(once)
		require.NoError(t, err)

		want := RGBToHex(MustParseColor(c).RGB)
		assert.Equal(t, want, twice, c)
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		color string
		dark  bool
	}{
		{steelBlue, false},
		{"#000000", true},
		{"#ffffff", false},
		{"navy", true},
		{"yellow", false},
		{"#808080", false},
		{"#7f7f7f", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			dark, err := IsDark(tt.color)
			require.NoError(t, err)
			assert.Equal(t, tt.dark, dark)

			light, err := IsLight(tt.color)
			require.NoError(t, err)
			assert.Equal(t, !tt.dark, light)
		})
	}
}

func TestIsLight_NegatesIsDark(t *testing.T) {
	for _, c := range sampleColors {
		dark, err := IsDark(c)
		require.NoError(t, err)
		light, err := IsLight(c)
		require.NoError(t, err)
		assert.NotEqual(t, dark, light, c)
	}
}

func TestTransforms_PropagateParseErrors(t *testing.T) {
	_, err := Lighten("invalidColor", 0.2)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Darken("#12345", 0.2)
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = AdjustHue("rgb(1, 2)", 10)
	assert.ErrorIs(t, err, ErrInvalidRGB)

	_, err = ComplementaryColor("")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = InvertColor("#zzz")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = IsDark("bogus")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = IsLight("bogus")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLuma(t *testing.T) {
	assert.InDelta(t, 255.0, Luma(RGB{255, 255, 255}), 1e-9)
	assert.InDelta(t, 0.0, Luma(RGB{0, 0, 0}), 1e-9)
	assert.InDelta(t, 76.245, Luma(RGB{255, 0, 0}), 1e-9)
}
