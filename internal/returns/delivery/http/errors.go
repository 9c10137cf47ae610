package http

import (
	"library-lending/internal/returns"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case returns.ErrRequestNotFound:
		return pkgErrors.NewHTTPError(404, "loan request not found")
	case returns.ErrWrongKind:
		return pkgErrors.NewHTTPError(409, "digital loans have no physical return")
	case returns.ErrNotReturnable:
		return pkgErrors.NewHTTPError(409, "request is not an active physical loan")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
