package postgres

import (
	"fmt"

	"car-selling-service/internal/infrastructure/database/postgres/models"
)

// Migrate brings the schema up to date for the user and listing tables.
func (d *DB) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.UserModel{},
		&models.ListingModel{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
