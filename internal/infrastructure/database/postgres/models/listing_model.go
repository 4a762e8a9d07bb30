package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel represents the database model for a car listing. The city
// CHECK constraint mirrors the service-level validation as defense in depth.
type ListingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Model     string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric;not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	City      string    `gorm:"type:varchar(50);not null;check:city IN ('Lahore','Karachi')"`
	Images    []string  `gorm:"type:jsonb;serializer:json"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ListingModel) TableName() string {
	return "listings"
}
