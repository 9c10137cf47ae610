package model

import "time"

// ItemKind distinguishes digital copies (unlimited concurrent access)
// from physical copies (single holder at a time).
type ItemKind string

const (
	KindDigital  ItemKind = "digital"
	KindPhysical ItemKind = "physical"
)

// Valid reports whether the kind is one of the known values.
func (k ItemKind) Valid() bool {
	return k == KindDigital || k == KindPhysical
}

// Availability is the lending availability of a physical item. Digital
// items are implicitly always available and never change availability.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityOnHold    Availability = "on_hold"
	AvailabilityTaken     Availability = "taken"

	// AvailabilityUnavailable is kept for manually withdrawn legacy
	// records; the lending engine never sets it.
	AvailabilityUnavailable Availability = "unavailable"
)

// Valid reports whether the availability is one of the known values.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityOnHold, AvailabilityTaken, AvailabilityUnavailable:
		return true
	}
	return false
}

// Item is a lendable catalog record.
type Item struct {
	ID               int64
	Title            string
	Author           string
	Owner            string
	Location         string // shelf location for physical, access URL for digital
	Kind             ItemKind
	LoanDurationDays int
	Availability     Availability
	Keywords         string
	CoverURL         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAvailable reports whether the item can accept a new hold. Digital
// items always can.
func (i Item) IsAvailable() bool {
	if i.Kind == KindDigital {
		return true
	}
	return i.Availability == AvailabilityAvailable
}
