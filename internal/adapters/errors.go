package adapters

import "errors"

var (
	ErrInvalidRegistration = errors.New("invalid adapter registration")
	ErrAdapterNotFound     = errors.New("adapter not found")
	ErrUnknownFormat       = errors.New("unknown format")
)
