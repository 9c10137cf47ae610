package model

import (
	"strings"
	"time"
)

// Member is a registered library member. Member records are managed by
// the directory; the lending engine only reads them.
type Member struct {
	ID          int64
	FirstName   string
	Surname     string
	OtherNames  string
	DateOfBirth *time.Time
	Email       string
	Phone       string
	Residence   string
	Landmark    string
}

// DisplayName returns the member's full name for notifications and
// audit snapshots.
func (m Member) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.Surname)
}
