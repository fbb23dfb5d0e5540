package store

import domainerrors "github.com/colorpal/colorpal-server/internal/errors"

// Sentinel errors returned by Store implementations. They are coded domain
// errors, so services may return them unchanged.
var (
	ErrNotFound      = domainerrors.NotFound("resource not found")
	ErrAlreadyExists = domainerrors.AlreadyExists("resource already exists")
)
