package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert member")
	ErrFailedToGet    = errors.New("failed to get member")
)
