package repository

import (
	"encoding/json"

	"github.com/daudtravel/backend/internal/models"
	"gorm.io/gorm"
)

// Accepted sortBy keys mapped to column identifiers. Caller text is never
// interpolated into the query.
var tourSortColumns = map[string]string{
	"created_at":  "created_at",
	"total_price": "total_price",
	"duration":    "duration",
}

func TourSortColumn(key string) (string, bool) {
	col, ok := tourSortColumns[key]
	return col, ok
}

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// AnyNameExists reports whether any of the names already belongs to a stored
// tour, in any locale. Read-only; the locked re-check inside CreateIfNamesFree
// stays authoritative for the actual insert.
func (r *TourRepository) AnyNameExists(names []string) (bool, error) {
	for _, name := range names {
		var exists bool
		err := r.db.Raw(`
			SELECT EXISTS (
				SELECT 1 FROM tours
				WHERE localizations @> jsonb_build_array(jsonb_build_object('name', ?::text))
			)`, name).Scan(&exists).Error
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}

// CreateIfNamesFree inserts the tour unless any submitted localization name
// is already taken by an existing tour in any locale. The advisory locks
// serialize concurrent creates with the same names, so the check-then-insert
// cannot race.
func (r *TourRepository) CreateIfNamesFree(tour *models.Tour) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, loc := range tour.Localizations {
			if err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, loc.Name).Error; err != nil {
				return err
			}
		}

		for _, loc := range tour.Localizations {
			var exists bool
			err := tx.Raw(`
				SELECT EXISTS (
					SELECT 1 FROM tours
					WHERE localizations @> jsonb_build_array(jsonb_build_object('name', ?::text))
				)`, loc.Name).Scan(&exists).Error
			if err != nil {
				return err
			}
			if exists {
				return nil
			}
		}

		if err := tx.Create(tour).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// List returns one page of tours plus the unpaged total. When locale is
// non-empty, only tours carrying that locale are returned and each tour's
// localizations hold exactly the matching entry.
func (r *TourRepository) List(locale, sortColumn, sortOrder string, limit, offset int) ([]models.Tour, int64, error) {
	var localeParam interface{}
	if locale != "" {
		localeParam = locale
	}

	query := `
		SELECT
			t.id,
			t.total_price,
			t.reservation_price,
			t.duration,
			t.image,
			t.gallery,
			t.public,
			t.created_at,
			t.updated_at,
			COUNT(*) OVER() AS total_count,
			CASE
				WHEN ?::text IS NOT NULL THEN COALESCE((
					SELECT jsonb_agg(loc)
					FROM jsonb_array_elements(t.localizations) loc
					WHERE loc->>'locale' = ?
				), '[]'::jsonb)
				ELSE t.localizations
			END AS localizations
		FROM tours t`

	args := []interface{}{localeParam, localeParam}

	if locale != "" {
		query += `
		WHERE EXISTS (
			SELECT 1
			FROM jsonb_array_elements(t.localizations) loc
			WHERE loc->>'locale' = ?
		)`
		args = append(args, locale)
	}

	query += `
		ORDER BY ` + sortColumn + ` ` + sortOrder + `
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tours []models.Tour
	var total int64

	for rows.Next() {
		var tour models.Tour
		var image *string
		var galleryJSON, localizationsJSON []byte

		err := rows.Scan(
			&tour.ID, &tour.TotalPrice, &tour.ReservationPrice, &tour.Duration,
			&image, &galleryJSON, &tour.Public, &tour.CreatedAt, &tour.UpdatedAt,
			&total, &localizationsJSON,
		)
		if err != nil {
			return nil, 0, err
		}

		if image != nil {
			tour.Image = *image
		}
		if err := unmarshalTourJSON(&tour, galleryJSON, localizationsJSON); err != nil {
			return nil, 0, err
		}

		tours = append(tours, tour)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return tours, total, nil
}

// GetByID fetches a single tour, applying the same locale filter as List.
func (r *TourRepository) GetByID(id, locale string) (*models.Tour, error) {
	var localeParam interface{}
	if locale != "" {
		localeParam = locale
	}

	rows, err := r.db.Raw(`
		SELECT
			t.id,
			t.total_price,
			t.reservation_price,
			t.duration,
			t.image,
			t.gallery,
			t.public,
			t.created_at,
			t.updated_at,
			CASE
				WHEN ?::text IS NOT NULL THEN COALESCE((
					SELECT jsonb_agg(loc)
					FROM jsonb_array_elements(t.localizations) loc
					WHERE loc->>'locale' = ?
				), '[]'::jsonb)
				ELSE t.localizations
			END AS localizations
		FROM tours t
		WHERE t.id = ?`, localeParam, localeParam, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, gorm.ErrRecordNotFound
	}

	var tour models.Tour
	var image *string
	var galleryJSON, localizationsJSON []byte

	err = rows.Scan(
		&tour.ID, &tour.TotalPrice, &tour.ReservationPrice, &tour.Duration,
		&image, &galleryJSON, &tour.Public, &tour.CreatedAt, &tour.UpdatedAt,
		&localizationsJSON,
	)
	if err != nil {
		return nil, err
	}

	if image != nil {
		tour.Image = *image
	}
	if err := unmarshalTourJSON(&tour, galleryJSON, localizationsJSON); err != nil {
		return nil, err
	}

	return &tour, nil
}

// Update overwrites only the named columns.
func (r *TourRepository) Update(tour *models.Tour, columns []string) error {
	return r.db.Model(&models.Tour{}).
		Where("id = ?", tour.ID).
		Select(columns).
		Updates(tour).Error
}

func (r *TourRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Tour{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func unmarshalTourJSON(tour *models.Tour, galleryJSON, localizationsJSON []byte) error {
	if len(galleryJSON) > 0 {
		if err := json.Unmarshal(galleryJSON, &tour.Gallery); err != nil {
			return err
		}
	}
	tour.Localizations = []models.TourLocalization{}
	if len(localizationsJSON) > 0 {
		if err := json.Unmarshal(localizationsJSON, &tour.Localizations); err != nil {
			return err
		}
	}
	return nil
}
