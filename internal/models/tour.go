package models

import (
	"time"
)

// TourLocalization is one translated entry inside the tour's jsonb
// localizations column. Order is preserved as submitted.
type TourLocalization struct {
	Locale      string `json:"locale" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Tour struct {
	ID               string             `json:"id" gorm:"type:uuid;primaryKey"`
	TotalPrice       float64            `json:"total_price" gorm:"type:decimal(10,2);not null"`
	ReservationPrice float64            `json:"reservation_price" gorm:"type:decimal(10,2);not null"`
	Duration         float64            `json:"duration" gorm:"type:decimal(10,2);not null"`
	Localizations    []TourLocalization `json:"localizations" gorm:"type:jsonb;serializer:json;not null"`
	Image            string             `json:"image"`
	Gallery          []string           `json:"gallery" gorm:"type:jsonb;serializer:json"`
	Public           bool               `json:"public" gorm:"default:false"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type CreateTourRequest struct {
	Localizations    []TourLocalization `json:"localizations" validate:"required,min=1,dive"`
	Duration         float64            `json:"duration" validate:"required,gt=0"`
	TotalPrice       float64            `json:"total_price" validate:"required,gt=0"`
	ReservationPrice float64            `json:"reservation_price" validate:"required,gt=0"`
	Image            string             `json:"image" validate:"omitempty,image_data_uri"`
	Gallery          []string           `json:"gallery" validate:"omitempty,dive,image_data_uri"`
	Public           bool               `json:"public"`
}

// UpdateTourRequest is a partial update. Image, Gallery and DeleteImages
// distinguish "absent" (nil, leave stored images alone) from supplied values.
type UpdateTourRequest struct {
	Localizations    []TourLocalization `json:"localizations" validate:"required,min=1,dive"`
	Duration         float64            `json:"duration" validate:"required,gt=0"`
	TotalPrice       float64            `json:"total_price" validate:"required,gt=0"`
	ReservationPrice float64            `json:"reservation_price" validate:"required,gt=0"`
	Image            *string            `json:"image" validate:"omitempty,image_data_uri"`
	Gallery          *[]string          `json:"gallery" validate:"omitempty,dive,image_data_uri"`
	DeleteImages     *[]string          `json:"deleteImages"`
	Public           *bool              `json:"public"`
}

type TourQueryParams struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Locale    string `query:"locale"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type TourListResponse struct {
	Tours      []Tour     `json:"tours"`
	Pagination Pagination `json:"pagination"`
}

// TourTranslations keys each localization by its locale for by-id lookups.
type TourTranslations map[string]struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Description string `json:"description"`
}

type TourDetailResponse struct {
	Tour
	Translations TourTranslations `json:"translations"`
}

func (t *Tour) TranslationsByLocale() TourTranslations {
	translations := make(TourTranslations, len(t.Localizations))
	for _, loc := range t.Localizations {
		translations[loc.Locale] = struct {
			Name        string `json:"name"`
			Destination string `json:"destination"`
			Description string `json:"description"`
		}{
			Name:        loc.Name,
			Destination: loc.Destination,
			Description: loc.Description,
		}
	}
	return translations
}
