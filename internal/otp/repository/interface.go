package repository

import (
	"context"

	"library-lending/internal/model"
)

// Repository defines data access for OTP challenges.
type Repository interface {
	// DeleteUnverifiedChallenges removes prior unverified challenges
	// for a phone, keeping at most one live challenge per subject.
	DeleteUnverifiedChallenges(ctx context.Context, phone string) error

	CreateChallenge(ctx context.Context, opt CreateChallengeOptions) (model.OTPChallenge, error)

	// ClaimChallenge atomically flips a matching unverified, unexpired
	// challenge to verified. Of two concurrent claims exactly one
	// reports true; a claimed or expired code never matches again.
	ClaimChallenge(ctx context.Context, opt ClaimChallengeOptions) (model.OTPChallenge, bool, error)
}
