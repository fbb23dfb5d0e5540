package service

import (
	"log/slog"

	"github.com/colorpal/colorpal-server/internal/color"
	"github.com/colorpal/colorpal-server/internal/metrics"
)

// Swatch is one colour in every representation the UI shows.
type Swatch struct {
	Hex       string `json:"hex"`
	RGB       string `json:"rgb"`
	HSL       string `json:"hsl"`
	CMYK      string `json:"cmyk"`
	IsLight   bool   `json:"is_light"`
	TextColor string `json:"text_color"`
}

// NewSwatch describes c.
func NewSwatch(c color.Color) Swatch {
	return Swatch{
		Hex:       c.Hex(),
		RGB:       c.RGBString(),
		HSL:       c.HSLString(),
		CMYK:      c.CMYK().String(),
		IsLight:   c.IsLight(),
		TextColor: c.ContrastText().Hex(),
	}
}

// SchemeInfo describes a supported scheme.
type SchemeInfo struct {
	Name color.Scheme `json:"name"`
	// BaseIndex is where the unmodified base colour sits in the output.
	BaseIndex int `json:"base_index"`
}

// GenerateRequest selects a base colour and scheme.
type GenerateRequest struct {
	BaseHex string `json:"base_hex" validate:"required"`
	Scheme  string `json:"scheme" validate:"required"`
}

// GeneratedPalette is the result of a scheme generation.
type GeneratedPalette struct {
	Scheme    color.Scheme `json:"scheme"`
	BaseIndex int          `json:"base_index"`
	Colors    []Swatch     `json:"colors"`
}

// SortRequest is a list of hex colours to order by hue.
type SortRequest struct {
	Colors []string `json:"colors" validate:"required,min=1,max=500"`
}

// GeneratorService exposes the colour core to request handlers. It is
// stateless apart from its random source.
type GeneratorService struct {
	source color.Source
	logger *slog.Logger
}

// NewGeneratorService creates a generator. A nil source uses the
// process-wide generator.
func NewGeneratorService(source color.Source, logger *slog.Logger) *GeneratorService {
	return &GeneratorService{source: source, logger: orDiscard(logger)}
}

// Schemes lists the supported schemes.
func (g *GeneratorService) Schemes() []SchemeInfo {
	schemes := color.Schemes()
	out := make([]SchemeInfo, len(schemes))
	for i, s := range schemes {
		out[i] = SchemeInfo{Name: s, BaseIndex: s.BaseIndex()}
	}
	return out
}

// Generate builds a five-colour palette around the base colour.
func (g *GeneratorService) Generate(req GenerateRequest) (*GeneratedPalette, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	scheme, err := color.ParseScheme(req.Scheme)
	if err != nil {
		return nil, err
	}
	palette, err := color.Generate(req.BaseHex, scheme)
	if err != nil {
		return nil, err
	}
	metrics.SchemeGenerated(string(scheme))

	out := &GeneratedPalette{Scheme: scheme, BaseIndex: scheme.BaseIndex(), Colors: make([]Swatch, 0, len(palette))}
	for _, c := range palette {
		out.Colors = append(out.Colors, NewSwatch(c))
	}
	return out, nil
}

// Convert describes a single hex colour.
func (g *GeneratorService) Convert(hex string) (Swatch, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		return Swatch{}, err
	}
	return NewSwatch(c), nil
}

// AdjustRequest converts a colour after mixing it with white (Tint) and
// then black (Shade). Both are percentages.
type AdjustRequest struct {
	Hex   string `json:"hex" validate:"required"`
	Tint  int    `json:"tint" validate:"min=0,max=100"`
	Shade int    `json:"shade" validate:"min=0,max=100"`
}

// Adjust applies the tint and shade in req and describes the result.
func (g *GeneratorService) Adjust(req AdjustRequest) (Swatch, error) {
	if err := validate.Validate(req); err != nil {
		return Swatch{}, err
	}
	c, err := color.ParseHex(req.Hex)
	if err != nil {
		return Swatch{}, err
	}
	if req.Tint > 0 {
		c = c.Tint(float64(req.Tint) / 100)
	}
	if req.Shade > 0 {
		c = c.Shade(float64(req.Shade) / 100)
	}
	return NewSwatch(c), nil
}

// Random returns a random, pleasantly saturated colour.
func (g *GeneratorService) Random() Swatch {
	if g.source == nil {
		return NewSwatch(color.RandomColor())
	}
	return NewSwatch(color.Random(g.source))
}

// SortByHue orders hex colours by hue, then saturation, then lightness.
func (g *GeneratorService) SortByHue(req SortRequest) ([]Swatch, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	colors := make([]color.Color, len(req.Colors))
	for i, h := range req.Colors {
		c, err := color.ParseHex(h)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}

	sorted := color.SortByHue(colors)
	out := make([]Swatch, len(sorted))
	for i, c := range sorted {
		out[i] = NewSwatch(c)
	}
	return out, nil
}
