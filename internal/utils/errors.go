package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotFound           = errors.New("content not found")
	ErrInvalidType        = errors.New("invalid content type")
	ErrMissingFields      = errors.New("missing required fields")
)
