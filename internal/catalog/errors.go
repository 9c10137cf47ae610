package catalog

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("item is missing required fields")
)
