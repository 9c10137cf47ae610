package http

import (
	"library-lending/internal/audit"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case audit.ErrInvalidAction:
		return pkgErrors.NewHTTPError(400, "unknown action filter")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
