package audit

import "errors"

var (
	ErrInvalidAction = errors.New("unknown audit action filter")
)
