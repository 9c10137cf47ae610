package returns

import "errors"

var (
	ErrRequestNotFound = errors.New("loan request not found")
	ErrWrongKind       = errors.New("digital loans have no physical return")
	ErrNotReturnable   = errors.New("request is not an active physical loan")
)
