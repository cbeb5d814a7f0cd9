package service

import "errors"

// Sentinel errors shared across services. Handlers map these to the HTTP
// error taxonomy: ErrNotFound → 404, ErrConflict → 409,
// ErrInvalidCredentials → 401, ErrInvalidInput → 400. Anything untyped is
// treated as an internal failure: logged in full, answered with a generic 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
