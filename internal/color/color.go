// Package color is the colour model behind ColorPal: parsing and formatting
// of hex, RGB, HSL and CMYK forms, HSL adjustments, scheme generation and
// the tolerant hue ordering used to lay out palettes.
//
// Every function in the package is pure. Color is a comparable value type
// and may be shared freely between goroutines.
package color

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/colorpal/colorpal-server/internal/errors"
)

// ErrInvalidColorFormat is returned for hex strings that do not describe a colour.
var ErrInvalidColorFormat = errors.ErrInvalidColorFormat

// Color is an sRGB colour with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGB is an integer RGB triple, 0-255 per channel.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK holds rounded integer percentages, 0-100 per channel.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// ParseHex parses "#rgb", "#rrggbb" or the same forms without the leading
// '#'. Hex digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return Color{}, errors.InvalidColorFormatf("invalid color %q: expected 3 or 6 hex digits", s)
	}

	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return Color{}, errors.InvalidColorFormatf("invalid color %q: non-hex character", s)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// MustParseHex is ParseHex for literals known to be valid. It panics otherwise.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHSL builds a colour from hue in degrees and saturation/lightness in
// percent. Out-of-range inputs are wrapped (hue) or clamped (s, l).
func FromHSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(wrapHue(h), clamp(s, 0, 100)/100, clamp(l, 0, 100)/100))
}

// Hex returns the lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGB returns the integer channel triple.
func (c Color) RGB() RGB {
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
}

// HSL returns the unrounded HSL representation. Achromatic colours report
// hue 0 and saturation 0.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}
}

// CMYK returns the device-simple subtractive approximation. It is not
// colour-managed. Pure black yields {0,0,0,100}.
func (c Color) CMYK() CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - max(r, g, b)
	if k >= 1 {
		return CMYK{K: 100}
	}
	part := func(v float64) int {
		return int(math.Round((1 - v - k) / (1 - k) * 100))
	}
	return CMYK{C: part(r), M: part(g), Y: part(b), K: int(math.Round(k * 100))}
}

// RGBString formats the colour as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSLString formats the colour as "hsl(h, s%, l%)" with rounded components.
func (c Color) HSLString() string {
	hsl := c.HSL()
	h := int(math.Round(hsl.H)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(math.Round(hsl.S)), int(math.Round(hsl.L)))
}

// String formats CMYK as "c%, m%, y%, k%".
func (k CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", k.C, k.M, k.Y, k.K)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
