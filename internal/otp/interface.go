package otp

import "context"

// UseCase issues and checks one-time passcodes bound to a member's
// phone, minting verified sessions on success.
type UseCase interface {
	Issue(ctx context.Context, input IssueInput) (IssueOutput, error)
	Verify(ctx context.Context, input VerifyInput) (VerifyOutput, error)
}
