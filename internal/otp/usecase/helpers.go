package usecase

import "context"

// tryNotify dispatches the code fire-and-forget. Failures are logged
// and swallowed; the challenge row already exists either way.
func (uc *implUseCase) tryNotify(ctx context.Context, destination, body string) {
	if uc.notifier == nil || destination == "" {
		return
	}
	if err := uc.notifier.Send(ctx, destination, body); err != nil {
		uc.l.Warnf(ctx, "uc.tryNotify: delivery to %s failed (non-fatal): %v", destination, err)
	}
}
