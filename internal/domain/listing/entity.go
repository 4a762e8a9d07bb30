package listing

import (
	"time"

	"github.com/google/uuid"
)

// City is the set of cities a listing may be posted in.
type City string

const (
	CityLahore  City = "Lahore"
	CityKarachi City = "Karachi"
)

// IsValid reports whether c is one of the supported cities.
func (c City) IsValid() bool {
	return c == CityLahore || c == CityKarachi
}

// Listing represents a car-for-sale record submitted by a user. UserID is
// always the identity resolved from the caller's token, never client input.
type Listing struct {
	ID        uuid.UUID
	Model     string
	Price     float64
	Phone     string
	City      City
	Images    []string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
