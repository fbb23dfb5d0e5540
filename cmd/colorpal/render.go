package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colorpal/colorpal-server/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9d7aff"))

	labelStyle = lipgloss.NewStyle().
			Width(6).
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5f5f"))

	baseMarkerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9d7aff"))
)

// swatchBlock paints a swatch's hex on its own background in its contrast
// text colour.
func swatchBlock(sw service.Swatch) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(sw.Hex)).
		Foreground(lipgloss.Color(sw.TextColor)).
		Padding(1, 2).
		Render(sw.Hex)
}

// renderPalette lays swatches side by side. The swatch at baseIndex is
// marked; pass -1 for none.
func renderPalette(swatches []service.Swatch, baseIndex int) string {
	blocks := make([]string, len(swatches))
	for i, sw := range swatches {
		block := swatchBlock(sw)
		marker := ""
		if i == baseIndex {
			marker = baseMarkerStyle.Render("base")
		}
		blocks[i] = lipgloss.JoinVertical(lipgloss.Center, block, marker)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// renderDetails shows one swatch next to its representations.
func renderDetails(sw service.Swatch) string {
	lines := []string{
		labelStyle.Render("hex") + sw.Hex,
		labelStyle.Render("rgb") + sw.RGB,
		labelStyle.Render("hsl") + sw.HSL,
		labelStyle.Render("cmyk") + sw.CMYK,
		labelStyle.Render("text") + sw.TextColor,
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, swatchBlock(sw), "  ", strings.Join(lines, "\n"))
}
