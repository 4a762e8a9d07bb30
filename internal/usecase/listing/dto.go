package listing

import (
	"io"
	"time"

	"github.com/google/uuid"

	domainListing "car-selling-service/internal/domain/listing"
)

// SubmitRequest carries the form fields of a listing submission. The owning
// user is taken from the authenticated context, never from this struct.
type SubmitRequest struct {
	Model string  `json:"model" validate:"required,min=3"`
	Price float64 `json:"price" validate:"required"`
	Phone string  `json:"phone" validate:"required,phone11"`
	City  string  `json:"city" validate:"required,city"`
}

// Image is one uploaded image part, streamed to the image host on submit.
type Image struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type ListingResponse struct {
	ID        uuid.UUID `json:"id"`
	Model     string    `json:"model"`
	Price     float64   `json:"price"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Images    []string  `json:"images"`
	UserID    uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToListingResponse(l *domainListing.Listing) *ListingResponse {
	if l == nil {
		return nil
	}
	images := l.Images
	if images == nil {
		images = []string{}
	}
	return &ListingResponse{
		ID:        l.ID,
		Model:     l.Model,
		Price:     l.Price,
		Phone:     l.Phone,
		City:      string(l.City),
		Images:    images,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
