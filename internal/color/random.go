package color

import "math/rand/v2"

// Source is the subset of *rand.Rand used for random colours.
type Source interface {
	Float64() float64
}

// Random draws hue uniformly from [0,360), saturation from [50,100] and
// lightness from [40,70].
func Random(r Source) Color {
	h := r.Float64() * 360
	s := 50 + r.Float64()*50
	l := 40 + r.Float64()*30
	return FromHSL(h, s, l)
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// RandomColor is Random over the process-wide generator.
func RandomColor() Color {
	return Random(globalSource{})
}
