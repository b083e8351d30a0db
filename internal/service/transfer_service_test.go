package service

import (
	"testing"
	"time"

	"github.com/daudtravel/backend/internal/models"
	"github.com/stretchr/testify/require"
)

type mockTransferStore struct {
	created  *models.Transfer
	updateOK bool
	deleteOK bool
	all      []models.Transfer
}

var _ TransferStore = (*mockTransferStore)(nil)

func (m *mockTransferStore) Create(transfer *models.Transfer) error {
	m.created = transfer
	return nil
}

func (m *mockTransferStore) GetAll() ([]models.Transfer, error) {
	return m.all, nil
}

func (m *mockTransferStore) GetByID(id string) (*models.Transfer, error) {
	return &models.Transfer{ID: id}, nil
}

func (m *mockTransferStore) Update(transfer *models.Transfer) (bool, error) {
	return m.updateOK, nil
}

func (m *mockTransferStore) Delete(id string) (bool, error) {
	return m.deleteOK, nil
}

func transferRequest() models.TransferRequest {
	return models.TransferRequest{
		Localizations: []models.TransferLocalization{
			{Locale: "en", StartLocation: "Tbilisi Airport", EndLocation: "Batumi"},
			{Locale: "ka", StartLocation: "თბილისის აეროპორტი", EndLocation: "ბათუმი"},
		},
		Date:             time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		TotalPrice:       120,
		ReservationPrice: 40,
	}
}

func TestCreateTransfer_AssignsIDAndKeepsLocalizationOrder(t *testing.T) {
	store := &mockTransferStore{}
	svc := NewTransferService(store)

	transfer, err := svc.CreateTransfer(transferRequest())
	require.NoError(t, err)
	require.NotEmpty(t, transfer.ID)
	require.Equal(t, "en", transfer.Localizations[0].Locale)
	require.Equal(t, "ka", transfer.Localizations[1].Locale)
	require.Same(t, store.created, transfer)
}

func TestGetTransfers_EmptyIsNotNil(t *testing.T) {
	svc := NewTransferService(&mockTransferStore{})

	transfers, err := svc.GetTransfers()
	require.NoError(t, err)
	require.NotNil(t, transfers)
	require.Empty(t, transfers)
}

func TestUpdateTransfer_NotFound(t *testing.T) {
	svc := NewTransferService(&mockTransferStore{updateOK: false})

	_, err := svc.UpdateTransfer("missing", transferRequest())
	require.ErrorIs(t, err, ErrTransferNotFound)
}

func TestDeleteTransfer_NotFound(t *testing.T) {
	svc := NewTransferService(&mockTransferStore{deleteOK: false})

	require.ErrorIs(t, svc.DeleteTransfer("missing"), ErrTransferNotFound)
}
