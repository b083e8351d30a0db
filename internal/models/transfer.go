package models

import (
	"time"
)

type TransferLocalization struct {
	Locale        string `json:"locale" validate:"required"`
	StartLocation string `json:"start_location" validate:"required"`
	EndLocation   string `json:"end_location" validate:"required"`
}

type Transfer struct {
	ID               string                 `json:"id" gorm:"type:uuid;primaryKey"`
	TotalPrice       float64                `json:"total_price" gorm:"type:decimal(10,2);not null"`
	ReservationPrice float64                `json:"reservation_price" gorm:"type:decimal(10,2);not null"`
	Date             time.Time              `json:"date" gorm:"not null"`
	Localizations    []TransferLocalization `json:"localizations" gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type TransferRequest struct {
	Localizations    []TransferLocalization `json:"localizations" validate:"required,min=1,dive"`
	Date             time.Time              `json:"date" validate:"required"`
	TotalPrice       float64                `json:"total_price" validate:"required,gt=0"`
	ReservationPrice float64                `json:"reservation_price" validate:"required,gt=0"`
}
