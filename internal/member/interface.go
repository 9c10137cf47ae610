package member

import (
	"context"
	"io"
)

// UseCase is the member directory surface: the public existence check
// and the admin-side bulk import.
type UseCase interface {
	// Check reports whether a contact (email or phone) belongs to a
	// registered member, without leaking anything beyond the name.
	Check(ctx context.Context, contact string) (CheckOutput, error)

	// Detail returns the member behind a contact.
	Detail(ctx context.Context, contact string) (MemberOutput, error)

	// ImportCSV get-or-creates members from a CSV stream keyed by
	// email. Expected header: first_name,surname,other_names,email,
	// phone,residence,landmark.
	ImportCSV(ctx context.Context, r io.Reader) (ImportOutput, error)
}
