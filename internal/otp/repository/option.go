package repository

import "time"

type CreateChallengeOptions struct {
	Phone     string
	Code      string
	ExpiresAt time.Time
}

type ClaimChallengeOptions struct {
	Phone string
	Code  string
	Now   time.Time
}
