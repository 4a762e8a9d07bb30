package listing

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for listing repository operations
type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Listing, error)
}
