package returns

import "context"

// UseCase is the return desk: it validates that a token identifies a
// returnable physical loan and records the confirmed return.
type UseCase interface {
	// Lookup resolves a token for the return desk. Digital requests are
	// rejected with ErrWrongKind before any state is touched.
	Lookup(ctx context.Context, token string) (LookupOutput, error)

	// ConfirmReturn closes the loan via the lending state machine and
	// appends the return to the audit log.
	ConfirmReturn(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)
}
