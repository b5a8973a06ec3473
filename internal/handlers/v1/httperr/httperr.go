// Package httperr maps domain errors onto huma status errors so every
// handler reports the same way.
package httperr

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

// FromError wraps err with the HTTP status implied by its domain meaning.
func FromError(message string, err error) error {
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, dberr.ErrConflict):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, message, err)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrNoUser):
		return huma.NewError(http.StatusUnauthorized, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
