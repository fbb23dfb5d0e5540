package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_BasePosition(t *testing.T) {
	const base = "#6366f1"
	for _, s := range Schemes() {
		t.Run(string(s), func(t *testing.T) {
			p, err := Generate(base, s)
			require.NoError(t, err)
			assert.Equal(t, base, p[s.BaseIndex()].Hex())
		})
	}

	analogous, err := Generate(base, Analogous)
	require.NoError(t, err)
	assert.Equal(t, base, analogous[2].Hex())

	triadic, err := Generate(base, Triadic)
	require.NoError(t, err)
	assert.Equal(t, base, triadic[0].Hex())
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, s := range Schemes() {
		first, err := Generate("#3a7d44", s)
		require.NoError(t, err)
		second, err := Generate("#3a7d44", s)
		require.NoError(t, err)
		assert.Equal(t, first, second, string(s))
	}
}

func TestGenerate_ComplementaryOfRed(t *testing.T) {
	p, err := Generate("#ff0000", Complementary)
	require.NoError(t, err)

	assert.InDelta(t, 180, p[3].HSL().H, 1)
	assert.InDelta(t, 180, p[4].HSL().H, 1)
	assert.Less(t, p[4].HSL().L, p[3].HSL().L)
	assert.Greater(t, p[0].HSL().L, p[1].HSL().L)
	assert.Greater(t, p[1].HSL().L, p[2].HSL().L)
}

func TestGenerate_Recipes(t *testing.T) {
	base := MustParseHex("#6366f1")
	hue := base.HSL().H
	rot := func(d float64) float64 { return wrapHue(hue + d) }

	tests := []struct {
		scheme Scheme
		hues   [PaletteSize]float64
	}{
		{Analogous, [PaletteSize]float64{rot(-30), rot(-15), hue, rot(15), rot(30)}},
		{Tetradic, [PaletteSize]float64{hue, rot(90), rot(180), rot(270), hue}},
		{Triadic, [PaletteSize]float64{hue, rot(120), rot(240), hue, rot(120)}},
	}
	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			p, err := tt.scheme.Apply(base)
			require.NoError(t, err)
			for i, want := range tt.hues {
				assert.InDelta(t, want, p[i].HSL().H, 1.5, "slot %d", i)
			}
		})
	}
}

func TestGenerate_Monochromatic(t *testing.T) {
	p, err := Generate("#6366f1", Monochromatic)
	require.NoError(t, err)

	for i := 1; i < PaletteSize; i++ {
		assert.Greater(t, p[i].HSL().L, p[i-1].HSL().L, "lightness rises across slots")
		assert.InDelta(t, p[2].HSL().H, p[i].HSL().H, 1.5)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate("not-a-color", Analogous)
	assert.ErrorIs(t, err, ErrInvalidColorFormat)

	_, err = Generate("#6366f1", Scheme("rainbow"))
	assert.ErrorIs(t, err, ErrUnknownSchemeType)
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" Analogous ")
	require.NoError(t, err)
	assert.Equal(t, Analogous, s)
	assert.True(t, s.Valid())

	_, err = ParseScheme("split-complementary")
	assert.ErrorIs(t, err, ErrUnknownSchemeType)
	assert.False(t, Scheme("").Valid())
}

func TestPalette_Hexes(t *testing.T) {
	p, err := Generate("#6366f1", Analogous)
	require.NoError(t, err)

	hexes := p.Hexes()
	require.Len(t, hexes, PaletteSize)
	assert.Equal(t, "#6366f1", hexes[2])
}
