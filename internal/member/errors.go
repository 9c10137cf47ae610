package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrBadCSV         = errors.New("csv is malformed or missing required columns")
)
