package configs

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
)

var (
	ErrNotFound      = errors.New("config not found")
	ErrDuplicate     = errors.New("config already exists")
	ErrInvalidType   = errors.New("invalid config type")
	ErrInvalidFormat = errors.New("invalid config format")
	ErrInvalidConfig = errors.New("invalid config")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, adapters.ErrAdapterNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, adapters.ErrUnknownFormat):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
