package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/colorpal/colorpal-server/internal/errors"
)

type paletteInput struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Scheme   string   `json:"scheme_type" validate:"required,scheme"`
	Access   string   `json:"access,omitempty" validate:"omitempty,access"`
	ColorIDs []string `json:"color_ids" validate:"min=1"`
	Base     string   `json:"base" validate:"omitempty,colorhex"`
}

func details(t *testing.T, err error) map[string]string {
	t.Helper()
	var de *domainerrors.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domainerrors.CodeValidation, de.Code)
	d, ok := de.Details.(map[string]string)
	require.True(t, ok)
	return d
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(paletteInput{
		Name:     "Living room",
		Scheme:   "Triadic",
		Access:   "FRIENDS",
		ColorIDs: []string{"col-1"},
		Base:     "6366f1",
	})
	assert.NoError(t, err)
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()
	err := v.Validate(paletteInput{
		Name:   "x",
		Scheme: "rainbow",
		Access: "SECRET",
		Base:   "#12",
	})

	d := details(t, err)
	assert.Contains(t, d["scheme_type"], "analogous")
	assert.Contains(t, d["access"], "PUBLIC")
	assert.Contains(t, d["base"], "hex color")
	assert.Equal(t, "must contain at least 1 items", d["color_ids"])
}

func TestValidate_Required(t *testing.T) {
	d := details(t, New().Validate(paletteInput{ColorIDs: []string{"c"}}))
	assert.Equal(t, "is required", d["name"])
	assert.Equal(t, "is required", d["scheme_type"])
	assert.NotContains(t, d, "access")
}
