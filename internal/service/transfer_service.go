package service

import (
	"github.com/daudtravel/backend/internal/models"
	"github.com/google/uuid"
)

type TransferStore interface {
	Create(transfer *models.Transfer) error
	GetAll() ([]models.Transfer, error)
	GetByID(id string) (*models.Transfer, error)
	Update(transfer *models.Transfer) (bool, error)
	Delete(id string) (bool, error)
}

type TransferService struct {
	transferStore TransferStore
}

func NewTransferService(transferStore TransferStore) *TransferService {
	return &TransferService{transferStore: transferStore}
}

func (s *TransferService) CreateTransfer(req models.TransferRequest) (*models.Transfer, error) {
	transfer := &models.Transfer{
		ID:               uuid.NewString(),
		Localizations:    req.Localizations,
		Date:             req.Date,
		TotalPrice:       req.TotalPrice,
		ReservationPrice: req.ReservationPrice,
	}

	if err := s.transferStore.Create(transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}

func (s *TransferService) GetTransfers() ([]models.Transfer, error) {
	transfers, err := s.transferStore.GetAll()
	if err != nil {
		return nil, err
	}
	if transfers == nil {
		transfers = []models.Transfer{}
	}
	return transfers, nil
}

func (s *TransferService) UpdateTransfer(id string, req models.TransferRequest) (*models.Transfer, error) {
	transfer := &models.Transfer{
		ID:               id,
		Localizations:    req.Localizations,
		Date:             req.Date,
		TotalPrice:       req.TotalPrice,
		ReservationPrice: req.ReservationPrice,
	}

	updated, err := s.transferStore.Update(transfer)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrTransferNotFound
	}

	return s.transferStore.GetByID(id)
}

func (s *TransferService) DeleteTransfer(id string) error {
	deleted, err := s.transferStore.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransferNotFound
	}
	return nil
}
