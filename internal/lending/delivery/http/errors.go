package http

import (
	"library-lending/internal/lending"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case lending.ErrSessionExpired:
		return pkgErrors.NewHTTPError(401, "session missing or expired, verify again")
	case lending.ErrRequestNotFound:
		return pkgErrors.NewHTTPError(404, "loan request not found")
	case lending.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case lending.ErrMemberNotFound:
		return pkgErrors.NewHTTPError(404, "member not found")
	case lending.ErrItemUnavailable:
		return pkgErrors.NewHTTPError(409, "item is not available right now")
	case lending.ErrWeeklyLimit:
		return pkgErrors.NewHTTPError(409, "weekly digital borrowing limit reached")
	case lending.ErrMonthlyLimit:
		return pkgErrors.NewHTTPError(409, "monthly digital borrowing limit reached")
	case lending.ErrActiveLoan:
		return pkgErrors.NewHTTPError(409, "an unreturned physical loan is already open")
	case lending.ErrInvalidOperation:
		return pkgErrors.NewHTTPError(409, "the request does not allow that transition")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
