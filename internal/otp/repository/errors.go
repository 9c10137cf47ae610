package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert challenge")
	ErrFailedToUpdate = errors.New("failed to update challenge")
	ErrFailedToDelete = errors.New("failed to delete challenges")
)
