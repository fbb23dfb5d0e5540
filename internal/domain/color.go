package domain

import (
	"strings"

	"github.com/colorpal/colorpal-server/internal/color"
)

// Color is a saved swatch. Hex is authoritative; RGB, HSL and CMYK are
// derived from it whenever it changes.
type Color struct {
	Record
	Name      string `json:"name,omitempty"`
	Hex       string `json:"hex"`
	RGB       string `json:"rgb"`
	HSL       string `json:"hsl"`
	CMYK      string `json:"cmyk"`
	Company   string `json:"company,omitempty"`
	Code      string `json:"code,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// SetHex parses hex and refreshes the derived representations.
func (c *Color) SetHex(hex string) error {
	parsed, err := color.ParseHex(hex)
	if err != nil {
		return err
	}
	c.Hex = parsed.Hex()
	c.RGB = parsed.RGBString()
	c.HSL = parsed.HSLString()
	c.CMYK = parsed.CMYK().String()
	return nil
}

// Value returns the colour for Hex. Stored hex is always valid, so a parse
// failure yields black.
func (c *Color) Value() color.Color {
	v, _ := color.ParseHex(c.Hex)
	return v
}

// Label is the swatch name or, failing that, its manufacturer reference.
func (c *Color) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.Company + " " + c.Code)
}
