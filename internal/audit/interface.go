package audit

import "context"

// UseCase is the read side of the audit log. Writes happen inside the
// lending and return flows, never through this surface.
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
