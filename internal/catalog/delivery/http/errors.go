package http

import (
	"library-lending/internal/catalog"
	pkgErrors "library-lending/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case catalog.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case catalog.ErrInvalidItem:
		return pkgErrors.NewHTTPError(400, "item is missing required fields")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
