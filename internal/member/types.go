package member

import "library-lending/internal/model"

// --- UseCase Outputs ---

type CheckOutput struct {
	Exists bool
	// DisplayName is set only when the member exists; contact details
	// are never echoed back on this unauthenticated surface.
	DisplayName string
}

type MemberOutput struct {
	Member model.Member
}

// ImportOutput summarizes one CSV import run.
type ImportOutput struct {
	Created int
	Skipped int // rows whose email already exists
	Invalid int // rows missing a name or contact
}
