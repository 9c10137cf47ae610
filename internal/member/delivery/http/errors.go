package http

import (
	"library-lending/internal/member"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case member.ErrMemberNotFound:
		return pkgErrors.NewHTTPError(404, "member not found")
	case member.ErrBadCSV:
		return pkgErrors.NewHTTPError(400, "csv is malformed or missing required columns")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
