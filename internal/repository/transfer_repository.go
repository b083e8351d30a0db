package repository

import (
	"github.com/daudtravel/backend/internal/models"
	"gorm.io/gorm"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(transfer *models.Transfer) error {
	return r.db.Create(transfer).Error
}

func (r *TransferRepository) GetAll() ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.Order("created_at DESC").Find(&transfers).Error
	return transfers, err
}

func (r *TransferRepository) GetByID(id string) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.db.First(&transfer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// Update overwrites the transfer's payload columns; reports whether a row
// matched the id.
func (r *TransferRepository) Update(transfer *models.Transfer) (bool, error) {
	result := r.db.Model(&models.Transfer{}).
		Where("id = ?", transfer.ID).
		Select("localizations", "date", "total_price", "reservation_price").
		Updates(transfer)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *TransferRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Transfer{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
