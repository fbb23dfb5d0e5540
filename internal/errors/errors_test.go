package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeTokenExpired, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidColorFormat, http.StatusBadRequest},
		{CodeUnknownSchemeType, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	err := NotFoundf("palette %s not found", "pal-1")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrForbidden))
	assert.Equal(t, "palette pal-1 not found", err.Error())

	wrapped := fmt.Errorf("load: %w", err)
	assert.True(t, Is(wrapped, ErrNotFound))
}

func TestAs_ExtractsStatus(t *testing.T) {
	wrapped := fmt.Errorf("parse: %w", InvalidColorFormatf("invalid hex %q", "#zz"))

	var domainErr *Error
	require.True(t, As(wrapped, &domainErr))
	assert.Equal(t, CodeInvalidColorFormat, domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := New("disk full")
	err := Wrap(cause, CodeInternal, "save palette")

	assert.Equal(t, "save palette: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)

	err = Wrapf(cause, CodeConflict, "color %d", 3)
	assert.Equal(t, "color 3: disk full", err.Error())
}

func TestWithDetails_DoesNotMutate(t *testing.T) {
	details := map[string]string{"hex": "required"}
	err := ErrValidation.WithDetails(details)

	assert.Equal(t, details, err.Details)
	assert.Nil(t, ErrValidation.Details)
	assert.True(t, Is(err, ErrValidation))
}

func TestNewf_LiteralPercent(t *testing.T) {
	// Without args the message is used verbatim.
	assert.Equal(t, "lighten by 10%", Validation("lighten by 10%").Message)
	assert.Equal(t, "unknown scheme type: \"neon\"", UnknownSchemeTypef("unknown scheme type: %q", "neon").Message)
}

func TestConstructors_KeepMessageVerbatim(t *testing.T) {
	msg := "100% of %s used"
	tests := []struct {
		name string
		err  *Error
		code Code
	}{
		{"NotFound", NotFound(msg), CodeNotFound},
		{"AlreadyExists", AlreadyExists(msg), CodeAlreadyExists},
		{"Unauthorized", Unauthorized(msg), CodeUnauthorized},
		{"Forbidden", Forbidden(msg), CodeForbidden},
		{"Validation", Validation(msg), CodeValidation},
		{"Conflict", Conflict(msg), CodeConflict},
		{"Internal", Internal(msg), CodeInternal},
		{"InvalidCredentials", InvalidCredentials(msg), CodeInvalidCredentials},
		{"TokenExpired", TokenExpired(msg), CodeTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, msg, tt.err.Message)
		})
	}
}
