package repository

import (
	"time"

	"github.com/daudtravel/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) GetByEmail(email string) (*models.EmailVerification, error) {
	var record models.EmailVerification
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Store writes a fresh code for the email, replacing any existing record
// and restarting the 15-minute window.
func (r *VerificationRepository) Store(email, code string) error {
	record := models.EmailVerification{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "created_at"}),
	}).Create(&record).Error
}

func (r *VerificationRepository) Delete(email string) error {
	return r.db.Delete(&models.EmailVerification{}, "email = ?", email).Error
}
