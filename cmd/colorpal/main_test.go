package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpal/colorpal-server/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputJSON = false
		schemeName = "analogous"
		randomCount = 1
		convertTint = 0
		convertShade = 0
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "generate", "#ff0000", "--scheme", "complementary", "--json")
	require.NoError(t, err)

	var p service.GeneratedPalette
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "complementary", string(p.Scheme))
	require.Len(t, p.Colors, 5)
	assert.Equal(t, "#ff0000", p.Colors[p.BaseIndex].Hex)
}

func TestGenerateUnknownScheme(t *testing.T) {
	_, err := run(t, "generate", "#ff0000", "--scheme", "rainbow")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "f00")
	require.NoError(t, err)
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "rgb(255, 0, 0)")
	assert.Contains(t, out, "0%, 100%, 100%, 0%")
}

func TestConvertTint(t *testing.T) {
	out, err := run(t, "convert", "#ff0000", "--tint", "50", "--json")
	require.NoError(t, err)

	var sw service.Swatch
	require.NoError(t, json.Unmarshal([]byte(out), &sw))
	assert.Equal(t, "#ff8080", sw.Hex)
}

func TestConvertInvalid(t *testing.T) {
	_, err := run(t, "convert", "zzz")
	assert.Error(t, err)
}

func TestRandomCount(t *testing.T) {
	out, err := run(t, "random", "--count", "3", "--json")
	require.NoError(t, err)

	var swatches []service.Swatch
	require.NoError(t, json.Unmarshal([]byte(out), &swatches))
	assert.Len(t, swatches, 3)
}

func TestSort(t *testing.T) {
	out, err := run(t, "sort", "#0000ff", "#ff0000", "#00ff00", "--json")
	require.NoError(t, err)

	var swatches []service.Swatch
	require.NoError(t, json.Unmarshal([]byte(out), &swatches))
	require.Len(t, swatches, 3)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"},
		[]string{swatches[0].Hex, swatches[1].Hex, swatches[2].Hex})
}

func TestSchemesListsAll(t *testing.T) {
	out, err := run(t, "schemes")
	require.NoError(t, err)
	for _, name := range []string{"monochromatic", "analogous", "complementary", "triadic", "tetradic"} {
		assert.Contains(t, out, name)
	}
}

func TestRenderPaletteMarksBase(t *testing.T) {
	swatches := []service.Swatch{
		{Hex: "#ff0000", TextColor: "#ffffff"},
		{Hex: "#00ff00", TextColor: "#000000"},
	}
	out := renderPalette(swatches, 1)
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "base")

	assert.NotContains(t, renderPalette(swatches, -1), "base")
}
