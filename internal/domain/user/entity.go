package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the domain. Email is stored lowercase and is
// unique across the store.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
