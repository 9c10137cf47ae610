package lending

import "errors"

var (
	ErrRequestNotFound  = errors.New("loan request not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrSessionExpired   = errors.New("verification session missing or expired")
	ErrItemUnavailable  = errors.New("item is not available")
	ErrWeeklyLimit      = errors.New("weekly digital borrowing limit reached")
	ErrMonthlyLimit     = errors.New("monthly digital borrowing limit reached")
	ErrActiveLoan       = errors.New("an unreturned physical loan already exists")
	ErrInvalidOperation = errors.New("operation not valid for this request")
)
