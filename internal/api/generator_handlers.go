package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/colorpal/colorpal-server/internal/service"
)

// Generator operations are pure functions of their input and need no
// account.
func (s *Server) registerGeneratorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSchemes",
		Method:      http.MethodGet,
		Path:        "/api/v1/schemes",
		Summary:     "List colour schemes",
		Tags:        []string{"Generator"},
	}, s.handleListSchemes)

	huma.Register(s.api, huma.Operation{
		OperationID: "generatePalette",
		Method:      http.MethodPost,
		Path:        "/api/v1/schemes/generate",
		Summary:     "Generate a palette",
		Description: "Derives five colours from a base colour using a harmony scheme",
		Tags:        []string{"Generator"},
	}, s.handleGeneratePalette)

	huma.Register(s.api, huma.Operation{
		OperationID: "convertColor",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors/convert",
		Summary:     "Convert a colour",
		Description: "Returns RGB, HSL and CMYK forms and a readable text colour for a hex value",
		Tags:        []string{"Generator"},
	}, s.handleConvertColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "randomColor",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors/random",
		Summary:     "Random colour",
		Tags:        []string{"Generator"},
	}, s.handleRandomColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "sortColors",
		Method:      http.MethodPost,
		Path:        "/api/v1/colors/sort",
		Summary:     "Sort colours by hue",
		Description: "Orders hex colours by hue, then saturation, then lightness",
		Tags:        []string{"Generator"},
	}, s.handleSortColors)
}

// SchemesOutput wraps the scheme list for Huma.
type SchemesOutput struct {
	Body []service.SchemeInfo
}

// GenerateInput wraps a generation request for Huma.
type GenerateInput struct {
	Body service.GenerateRequest
}

// GeneratedOutput wraps a generated palette for Huma.
type GeneratedOutput struct {
	Body *service.GeneratedPalette
}

// ConvertInput names the colour to convert.
type ConvertInput struct {
	Hex   string `query:"hex" required:"true" doc:"Colour as #rgb or #rrggbb; the # is optional"`
	Tint  int    `query:"tint" minimum:"0" maximum:"100" doc:"Percentage of white to mix in"`
	Shade int    `query:"shade" minimum:"0" maximum:"100" doc:"Percentage of black to mix in, applied after tint"`
}

// SwatchOutput wraps one swatch for Huma.
type SwatchOutput struct {
	Body service.Swatch
}

// SortInput wraps a sort request for Huma.
type SortInput struct {
	Body service.SortRequest
}

// SwatchesOutput wraps a swatch list for Huma.
type SwatchesOutput struct {
	Body []service.Swatch
}

func (s *Server) handleListSchemes(_ context.Context, _ *struct{}) (*SchemesOutput, error) {
	return &SchemesOutput{Body: s.services.Generator.Schemes()}, nil
}

func (s *Server) handleGeneratePalette(_ context.Context, input *GenerateInput) (*GeneratedOutput, error) {
	p, err := s.services.Generator.Generate(input.Body)
	if err != nil {
		return nil, err
	}
	return &GeneratedOutput{Body: p}, nil
}

func (s *Server) handleConvertColor(_ context.Context, input *ConvertInput) (*SwatchOutput, error) {
	sw, err := s.services.Generator.Adjust(service.AdjustRequest{
		Hex:   input.Hex,
		Tint:  input.Tint,
		Shade: input.Shade,
	})
	if err != nil {
		return nil, err
	}
	return &SwatchOutput{Body: sw}, nil
}

func (s *Server) handleRandomColor(_ context.Context, _ *struct{}) (*SwatchOutput, error) {
	return &SwatchOutput{Body: s.services.Generator.Random()}, nil
}

func (s *Server) handleSortColors(_ context.Context, input *SortInput) (*SwatchesOutput, error) {
	sorted, err := s.services.Generator.SortByHue(input.Body)
	if err != nil {
		return nil, err
	}
	return &SwatchesOutput{Body: sorted}, nil
}
