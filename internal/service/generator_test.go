package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/color"
	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
)

// fixedSource returns the same value forever.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestGeneratorService_Generate(t *testing.T) {
	g := NewGeneratorService(nil, nil)

	tests := []struct {
		scheme    string
		baseIndex int
	}{
		{"analogous", 2},
		{"complementary", 2},
		{"monochromatic", 2},
		{"triadic", 0},
		{"Tetradic", 0},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			got, err := g.Generate(GenerateRequest{BaseHex: "#3366CC", Scheme: tt.scheme})
			require.NoError(t, err)
			require.Len(t, got.Colors, color.PaletteSize)
			assert.Equal(t, tt.baseIndex, got.BaseIndex)
			assert.Equal(t, "#3366cc", got.Colors[got.BaseIndex].Hex)
		})
	}
}

func TestGeneratorService_GenerateErrors(t *testing.T) {
	g := NewGeneratorService(nil, nil)

	_, err := g.Generate(GenerateRequest{BaseHex: "not-a-color", Scheme: "triadic"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)

	_, err = g.Generate(GenerateRequest{BaseHex: "#fff", Scheme: "pastel"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSchemeType)

	_, err = g.Generate(GenerateRequest{Scheme: "triadic"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestGeneratorService_Convert(t *testing.T) {
	g := NewGeneratorService(nil, nil)

	s, err := g.Convert("#FFF")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", s.Hex)
	assert.Equal(t, "rgb(255, 255, 255)", s.RGB)
	assert.True(t, s.IsLight)
	assert.Equal(t, "#000000", s.TextColor)

	s, err = g.Convert("000000")
	require.NoError(t, err)
	assert.False(t, s.IsLight)
	assert.Equal(t, "#ffffff", s.TextColor)

	_, err = g.Convert("#12345")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)
}

func TestGeneratorService_Adjust(t *testing.T) {
	g := NewGeneratorService(nil, nil)

	tests := []struct {
		name string
		req  AdjustRequest
		want string
	}{
		{"no change", AdjustRequest{Hex: "#ff0000"}, "#ff0000"},
		{"half tint", AdjustRequest{Hex: "#ff0000", Tint: 50}, "#ff8080"},
		{"half shade", AdjustRequest{Hex: "#ff0000", Shade: 50}, "#800000"},
		{"full tint", AdjustRequest{Hex: "#123456", Tint: 100}, "#ffffff"},
		{"tint then shade", AdjustRequest{Hex: "#000000", Tint: 100, Shade: 100}, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := g.Adjust(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Hex)
		})
	}

	_, err := g.Adjust(AdjustRequest{Hex: "#ff0000", Tint: 101})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = g.Adjust(AdjustRequest{Hex: "nope", Shade: 10})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)
}

func TestGeneratorService_RandomUsesSource(t *testing.T) {
	g := NewGeneratorService(fixedSource(0), nil)

	a := g.Random()
	b := g.Random()
	assert.Equal(t, a, b)

	c, err := color.ParseHex(a.Hex)
	require.NoError(t, err)
	hsl := c.HSL()
	assert.InDelta(t, 0, hsl.H, 1)
	assert.InDelta(t, 50, hsl.S, 1)
	assert.InDelta(t, 40, hsl.L, 1)
}

func TestGeneratorService_SortByHue(t *testing.T) {
	g := NewGeneratorService(nil, nil)

	got, err := g.SortByHue(SortRequest{Colors: []string{"#0000ff", "#ff0000", "#00ff00"}})
	require.NoError(t, err)
	hexes := make([]string, len(got))
	for i, s := range got {
		hexes[i] = s.Hex
	}
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, hexes)

	_, err = g.SortByHue(SortRequest{Colors: []string{"#ff0000", "red"}})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)

	_, err = g.SortByHue(SortRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestGeneratorService_Schemes(t *testing.T) {
	schemes := NewGeneratorService(nil, nil).Schemes()
	require.Len(t, schemes, 5)
	assert.Equal(t, color.Analogous, schemes[0].Name)
	assert.Equal(t, 2, schemes[0].BaseIndex)
}
