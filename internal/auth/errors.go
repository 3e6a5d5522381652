package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidInput       = errors.New("auth: invalid input")
	ErrNotFound           = errors.New("auth: not found")
	ErrAlreadyExists      = errors.New("auth: already exists")
	ErrWeakPassword       = errors.New("auth: password must be at least 8 characters")
)

// ErrInvalidToken indicates the session token failed validation.
var ErrInvalidToken = errors.New("auth: invalid token")
