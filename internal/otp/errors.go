package otp

import "errors"

var (
	ErrMemberNotFound  = errors.New("no member matches that contact")
	ErrInvalidCode     = errors.New("code is invalid or expired")
	ErrSessionExpired  = errors.New("verification session missing or expired")
	ErrTooManyRequests = errors.New("too many codes requested, try again later")
)
