package model

import "time"

// OTPChallenge is a short-lived numeric passcode bound to a member's
// phone number. At most one unverified, unexpired challenge exists per
// phone; issuing a new one deletes its predecessors.
type OTPChallenge struct {
	ID        int64
	Phone     string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	Verified  bool
}

// Usable reports whether the challenge can still be claimed.
func (c OTPChallenge) Usable(now time.Time) bool {
	return !c.Verified && now.Before(c.ExpiresAt)
}
