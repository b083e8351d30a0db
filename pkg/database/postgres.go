package database

import (
	"fmt"

	"github.com/daudtravel/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate runs once at boot, before the server accepts traffic.
// Handlers never touch the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.EmailVerification{},
		&models.Tour{},
		&models.Transfer{},
	); err != nil {
		return err
	}

	// GIN index for the jsonb containment checks on tour names and the
	// locale filter in list queries.
	return db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_tours_localizations ON tours USING GIN (localizations)`,
	).Error
}
