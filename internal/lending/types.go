package lending

import (
	"time"

	"library-lending/internal/model"
)

// Config carries the tunable lending rules.
type Config struct {
	// PendingHoldTTL is how long a physical request may sit Pending
	// before a sweep expires it and releases the hold.
	PendingHoldTTL time.Duration

	// DigitalWeeklyLimit / DigitalMonthlyLimit cap digital requests in
	// the trailing 7- and 30-day windows. The checks are independent.
	DigitalWeeklyLimit  int
	DigitalMonthlyLimit int
}

// --- UseCase Inputs ---

type SubmitInput struct {
	SessionToken string
	ItemID       int64
}

type ApproveInput struct {
	Token string
	Actor string
	Note  string
}

// --- UseCase Outputs ---

// SubmitOutput returns both sides of the coupled transition: the
// created request and the item whose availability it moved.
type SubmitOutput struct {
	Request model.LoanRequest
	Item    model.Item
}

type RequestOutput struct {
	Request model.LoanRequest
}
