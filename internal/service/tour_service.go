package service

import (
	"errors"
	"math"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TourStore is the persistence surface the service needs; implemented by
// *repository.TourRepository.
type TourStore interface {
	AnyNameExists(names []string) (bool, error)
	CreateIfNamesFree(tour *models.Tour) (bool, error)
	List(locale, sortColumn, sortOrder string, limit, offset int) ([]models.Tour, int64, error)
	GetByID(id, locale string) (*models.Tour, error)
	Update(tour *models.Tour, columns []string) error
	Delete(id string) (bool, error)
}

// ImageSaver persists inline image payloads and returns their URLs.
type ImageSaver interface {
	SaveImages(mainImage string, gallery []string) (string, []string, error)
}

type TourService struct {
	tourStore TourStore
	images    ImageSaver
}

func NewTourService(tourStore TourStore, images ImageSaver) *TourService {
	return &TourService{
		tourStore: tourStore,
		images:    images,
	}
}

func (s *TourService) CreateTour(req models.CreateTourRequest) (*models.Tour, error) {
	// Reject a taken name before touching blob storage; a conflicting create
	// must not leave orphaned uploads behind.
	names := make([]string, 0, len(req.Localizations))
	for _, loc := range req.Localizations {
		names = append(names, loc.Name)
	}
	taken, err := s.tourStore.AnyNameExists(names)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTourNameExists
	}

	mainImageURL, galleryURLs, err := s.images.SaveImages(req.Image, req.Gallery)
	if err != nil {
		return nil, err
	}

	tour := &models.Tour{
		ID:               uuid.NewString(),
		Localizations:    req.Localizations,
		Duration:         req.Duration,
		TotalPrice:       req.TotalPrice,
		ReservationPrice: req.ReservationPrice,
		Image:            mainImageURL,
		Gallery:          galleryURLs,
		Public:           req.Public,
	}

	created, err := s.tourStore.CreateIfNamesFree(tour)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrTourNameExists
	}

	return tour, nil
}

func (s *TourService) GetTours(params models.TourQueryParams) (*models.TourListResponse, error) {
	page, limit, sortColumn, sortOrder, err := normalizeTourQuery(params)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	tours, total, err := s.tourStore.List(params.Locale, sortColumn, sortOrder, limit, offset)
	if err != nil {
		return nil, err
	}

	if tours == nil {
		tours = []models.Tour{}
	}

	return &models.TourListResponse{
		Tours: tours,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *TourService) GetTour(id, locale string) (*models.TourDetailResponse, error) {
	tour, err := s.tourStore.GetByID(id, locale)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	return &models.TourDetailResponse{
		Tour:         *tour,
		Translations: tour.TranslationsByLocale(),
	}, nil
}

// UpdateTour overwrites only what the payload carries. An absent, null or
// empty Image leaves the stored image untouched, same for a nil Gallery and
// DeleteImages; gallery deletions are applied before additions.
func (s *TourService) UpdateTour(id string, req models.UpdateTourRequest) (*models.Tour, error) {
	if req.Image != nil && *req.Image == "" {
		req.Image = nil
	}
	existing, err := s.tourStore.GetByID(id, "")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	mainImageURL := existing.Image
	updatedGallery := existing.Gallery

	if req.DeleteImages != nil && len(*req.DeleteImages) > 0 {
		updatedGallery = removeURLs(updatedGallery, *req.DeleteImages)
	}

	if req.Image != nil || req.Gallery != nil {
		var mainPayload string
		var galleryPayloads []string
		if req.Image != nil {
			mainPayload = *req.Image
		}
		if req.Gallery != nil {
			galleryPayloads = *req.Gallery
		}

		newMainURL, newGalleryURLs, err := s.images.SaveImages(mainPayload, galleryPayloads)
		if err != nil {
			return nil, err
		}
		if req.Image != nil {
			mainImageURL = newMainURL
		}
		if req.Gallery != nil {
			updatedGallery = append(updatedGallery, newGalleryURLs...)
		}
	}

	tour := &models.Tour{
		ID:               id,
		Localizations:    req.Localizations,
		Duration:         req.Duration,
		TotalPrice:       req.TotalPrice,
		ReservationPrice: req.ReservationPrice,
		Image:            mainImageURL,
		Gallery:          updatedGallery,
	}

	columns := []string{"localizations", "duration", "total_price", "reservation_price", "updated_at"}
	if req.Image != nil {
		columns = append(columns, "image")
	}
	if req.Gallery != nil || req.DeleteImages != nil {
		columns = append(columns, "gallery")
	}
	if req.Public != nil {
		tour.Public = *req.Public
		columns = append(columns, "public")
	}

	if err := s.tourStore.Update(tour, columns); err != nil {
		return nil, err
	}

	return s.tourStore.GetByID(id, "")
}

func (s *TourService) DeleteTour(id string) error {
	deleted, err := s.tourStore.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTourNotFound
	}
	return nil
}

func normalizeTourQuery(params models.TourQueryParams) (page, limit int, sortColumn, sortOrder string, err error) {
	page = params.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, "", "", ErrInvalidQuery
	}

	limit = params.Limit
	if limit == 0 {
		limit = 10
	}
	if limit < 1 || limit > 100 {
		return 0, 0, "", "", ErrInvalidQuery
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortColumn, ok := repository.TourSortColumn(sortBy)
	if !ok {
		return 0, 0, "", "", ErrInvalidQuery
	}

	switch params.SortOrder {
	case "":
		sortOrder = "desc"
	case "asc", "desc":
		sortOrder = params.SortOrder
	default:
		return 0, 0, "", "", ErrInvalidQuery
	}

	return page, limit, sortColumn, sortOrder, nil
}

func removeURLs(gallery, toDelete []string) []string {
	deleteSet := make(map[string]struct{}, len(toDelete))
	for _, url := range toDelete {
		deleteSet[url] = struct{}{}
	}

	kept := make([]string, 0, len(gallery))
	for _, url := range gallery {
		if _, drop := deleteSet[url]; !drop {
			kept = append(kept, url)
		}
	}
	return kept
}
