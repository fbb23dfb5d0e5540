package color

import (
	"strings"

	"github.com/colorpal/colorpal-server/internal/errors"
)

// ErrUnknownSchemeType is returned for scheme selectors outside the known set.
var ErrUnknownSchemeType = errors.ErrUnknownSchemeType

// Scheme selects a palette recipe.
type Scheme string

// Supported schemes.
const (
	Analogous     Scheme = "analogous"
	Complementary Scheme = "complementary"
	Triadic       Scheme = "triadic"
	Tetradic      Scheme = "tetradic"
	Monochromatic Scheme = "monochromatic"
)

// PaletteSize is the number of colours every scheme produces.
const PaletteSize = 5

// Palette is a generated, ordered set of colours.
type Palette [PaletteSize]Color

// step derives one palette entry from the base colour.
type step func(base Color) Color

func rotate(deg float64) step { return func(b Color) Color { return b.Rotate(deg) } }
func lighten(a float64) step { return func(b Color) Color { return b.Lighten(a) } }
func darken(a float64) step { return func(b Color) Color { return b.Darken(a) } }
func identity(b Color) Color { return b }

func then(first, second step) step {
	return func(b Color) Color { return second(first(b)) }
}

// recipes lists, per scheme, how each slot is derived from the base. Every
// step starts from the base, so slots never depend on each other.
var recipes = map[Scheme][PaletteSize]step{
	Analogous:     {rotate(-30), rotate(-15), identity, rotate(15), rotate(30)},
	Complementary: {lighten(0.2), lighten(0.1), identity, rotate(180), then(rotate(180), darken(0.1))},
	Triadic:       {identity, rotate(120), rotate(240), lighten(0.2), then(rotate(120), lighten(0.2))},
	Tetradic:      {identity, rotate(90), rotate(180), rotate(270), lighten(0.15)},
	Monochromatic: {darken(0.3), darken(0.15), identity, lighten(0.15), lighten(0.3)},
}

// Schemes returns the supported schemes in display order.
func Schemes() []Scheme {
	return []Scheme{Analogous, Complementary, Triadic, Tetradic, Monochromatic}
}

// ParseScheme maps a selector to a Scheme. Matching ignores case and
// surrounding space.
func ParseScheme(s string) (Scheme, error) {
	scheme := Scheme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := recipes[scheme]; !ok {
		return "", errors.UnknownSchemeTypef("unknown scheme type %q", s)
	}
	return scheme, nil
}

// Valid reports whether s is a supported scheme.
func (s Scheme) Valid() bool {
	_, ok := recipes[s]
	return ok
}

// BaseIndex is the slot that holds the unmodified base colour.
func (s Scheme) BaseIndex() int {
	switch s {
	case Triadic, Tetradic:
		return 0
	default:
		return 2
	}
}

// Apply derives the palette for an already parsed base colour.
func (s Scheme) Apply(base Color) (Palette, error) {
	recipe, ok := recipes[s]
	if !ok {
		return Palette{}, errors.UnknownSchemeTypef("unknown scheme type %q", string(s))
	}
	var p Palette
	for i, derive := range recipe {
		p[i] = derive(base)
	}
	return p, nil
}

// Generate parses baseHex and derives the palette for scheme.
func Generate(baseHex string, scheme Scheme) (Palette, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return Palette{}, err
	}
	return scheme.Apply(base)
}

// Hexes returns the palette as lowercase hex strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
