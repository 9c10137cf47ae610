package model

import "time"

// Session is the expiring capability minted by a successful OTP
// verification. It is bound to one member's phone and consumed as a
// precondition for submitting loan requests.
type Session struct {
	Token     string
	MemberID  int64
	Phone     string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
