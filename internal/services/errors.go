package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these to HTTP statuses; nothing below the handler boundary knows
// about status codes.
var (
	// ErrNotFound - the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden - the caller is authenticated but does not own the entity.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict - the entity already exists (duplicate email, duplicate favorite).
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials - login failed; deliberately does not say why.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOperationFailed - the underlying save reported no rows affected.
	ErrOperationFailed = errors.New("operation failed")
)
