package otp

import "time"

// Config carries the OTP verifier tunables.
type Config struct {
	// CodeTTL is how long an issued code stays claimable.
	CodeTTL time.Duration

	// IssuesPerMinute caps code issuance per contact.
	IssuesPerMinute int
}

// --- UseCase Inputs ---

type IssueInput struct {
	Contact string // email or phone
}

type VerifyInput struct {
	Contact string
	Code    string
}

// --- UseCase Outputs ---

// IssueOutput confirms dispatch without revealing the code: the raw
// code travels only through the notification channel.
type IssueOutput struct {
	Destination string // masked phone the code was sent to
	ExpiresAt   time.Time
}

// VerifyOutput is the verified-session capability handed to Submit.
type VerifyOutput struct {
	SessionToken string
	ExpiresAt    time.Time
}
