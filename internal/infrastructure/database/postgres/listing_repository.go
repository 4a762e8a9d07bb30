package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"car-selling-service/internal/domain/listing"
	"car-selling-service/internal/infrastructure/database/postgres/models"
)

// ListingRepository implements listing.Repository on top of Postgres.
type ListingRepository struct {
	db *DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *DB) listing.Repository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	l.UpdatedAt = time.Now()

	dbModel := toListingModel(l)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	l.ID = dbModel.ID
	l.CreatedAt = dbModel.CreatedAt
	l.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ListingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*listing.Listing, error) {
	var dbModels []models.ListingModel
	err := r.db.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]*listing.Listing, 0, len(dbModels))
	for i := range dbModels {
		listings = append(listings, toListingEntity(&dbModels[i]))
	}

	return listings, nil
}

func toListingModel(l *listing.Listing) *models.ListingModel {
	return &models.ListingModel{
		ID:        l.ID,
		Model:     l.Model,
		Price:     l.Price,
		Phone:     l.Phone,
		City:      string(l.City),
		Images:    l.Images,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toListingEntity(m *models.ListingModel) *listing.Listing {
	return &listing.Listing{
		ID:        m.ID,
		Model:     m.Model,
		Price:     m.Price,
		Phone:     m.Phone,
		City:      listing.City(m.City),
		Images:    m.Images,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
