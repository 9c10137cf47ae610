package http

import (
	"library-lending/internal/otp"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case otp.ErrMemberNotFound:
		return pkgErrors.NewHTTPError(404, "no member matches that contact")
	case otp.ErrInvalidCode:
		return pkgErrors.NewHTTPError(401, "code is invalid or expired")
	case otp.ErrTooManyRequests:
		return pkgErrors.NewHTTPError(429, "too many codes requested, try again later")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
