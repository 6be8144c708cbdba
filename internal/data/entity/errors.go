package entity

import "errors"

// Error taxonomy shared by services and handlers. Handlers map these to
// HTTP status codes with errors.Is.
var (
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("user not found")
	ErrAlreadyExists   = errors.New("user already exists")
	ErrInvalidToken    = errors.New("token invalid or expired")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInference       = errors.New("inference service error")
	ErrEmailDelivery   = errors.New("email delivery failed")
)
