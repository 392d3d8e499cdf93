package service

import "errors"

// Domain errors. Handlers map these to transport status codes at the
// boundary; anything else is treated as internal.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrForbidden          = errors.New("operation not permitted")
	ErrInvalidInput       = errors.New("invalid input")
)
