package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to append audit entry")
	ErrFailedToList   = errors.New("failed to list audit entries")
)
