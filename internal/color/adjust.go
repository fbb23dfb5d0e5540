package color

// Rotate shifts the hue by deg degrees, wrapping modulo 360.
func (c Color) Rotate(deg float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H+deg, hsl.S, hsl.L)
}

// Lighten moves lightness toward 100 by amount (0-1) of the remaining distance.
func (c Color) Lighten(amount float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H, hsl.S, hsl.L+clamp(amount, 0, 1)*(100-hsl.L))
}

// Darken moves lightness toward 0 by amount (0-1) of the current value.
func (c Color) Darken(amount float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H, hsl.S, hsl.L-clamp(amount, 0, 1)*hsl.L)
}

// Mix interpolates each RGB channel toward other. weight 0 keeps c, 1 yields other.
func (c Color) Mix(other Color, weight float64) Color {
	return fromColorful(c.colorful().BlendRgb(other.colorful(), clamp(weight, 0, 1)))
}

var (
	white = Color{R: 255, G: 255, B: 255}
	black = Color{}
)

// Tint mixes the colour with white.
func (c Color) Tint(weight float64) Color {
	return c.Mix(white, weight)
}

// Shade mixes the colour with black.
func (c Color) Shade(weight float64) Color {
	return c.Mix(black, weight)
}

// Brightness is the perceived brightness in [0,1] using the
// (299R + 587G + 114B) / 1000 weighting.
func (c Color) Brightness() float64 {
	return (299*float64(c.R) + 587*float64(c.G) + 114*float64(c.B)) / 1000 / 255
}

// IsLight reports whether dark text reads better than light text on c.
func (c Color) IsLight() bool {
	return c.Brightness() >= 0.5
}

// ContrastText returns black for light colours and white otherwise.
func (c Color) ContrastText() Color {
	if c.IsLight() {
		return black
	}
	return white
}
