package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/pkg/database"
)

var (
	testDBOnce sync.Once
	testDB     *gorm.DB
	testDBErr  error
)

// testTourRepo boots one postgres container for the whole package and hands
// each test a repository over an empty tours table.
func testTourRepo(t *testing.T) *TourRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("needs a docker daemon")
	}

	testDBOnce.Do(func() {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("daudtravel_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(time.Minute)),
		)
		if err != nil {
			testDBErr = err
			return
		}
		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			testDBErr = err
			return
		}
		db, err := database.NewDatabase(dsn)
		if err != nil {
			testDBErr = err
			return
		}
		if err := database.Migrate(db); err != nil {
			testDBErr = err
			return
		}
		testDB = db
	})
	if testDBErr != nil {
		t.Skipf("postgres container unavailable: %v", testDBErr)
	}

	require.NoError(t, testDB.Exec("DELETE FROM tours").Error)
	return NewTourRepository(testDB)
}

func insertTour(t *testing.T, repo *TourRepository, price float64, locs []models.TourLocalization) *models.Tour {
	t.Helper()
	tour := &models.Tour{
		ID:               uuid.NewString(),
		TotalPrice:       price,
		ReservationPrice: price / 4,
		Duration:         2,
		Localizations:    locs,
		Public:           true,
	}
	created, err := repo.CreateIfNamesFree(tour)
	require.NoError(t, err)
	require.True(t, created)
	return tour
}

func kazbegiLocalizations() []models.TourLocalization {
	return []models.TourLocalization{
		{Locale: "ka", Name: "კაზბეგი", Destination: "ყაზბეგი", Description: "აღწერა"},
		{Locale: "en", Name: "Kazbegi", Destination: "Kazbegi", Description: "Day trip"},
		{Locale: "ru", Name: "Казбеги", Destination: "Казбеги", Description: "Описание"},
	}
}

func TestTourRepository_ListFiltersByLocale(t *testing.T) {
	repo := testTourRepo(t)

	multi := insertTour(t, repo, 150, kazbegiLocalizations())
	insertTour(t, repo, 90, []models.TourLocalization{
		{Locale: "ka", Name: "მესტია", Destination: "მესტია", Description: "აღწერა"},
	})

	tours, total, err := repo.List("en", "created_at", "desc", 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, tours, 1)
	require.Equal(t, multi.ID, tours[0].ID)
	require.Len(t, tours[0].Localizations, 1)
	require.Equal(t, "en", tours[0].Localizations[0].Locale)
	require.Equal(t, "Kazbegi", tours[0].Localizations[0].Name)
}

func TestTourRepository_ListWithoutLocaleKeepsAllTranslations(t *testing.T) {
	repo := testTourRepo(t)
	insertTour(t, repo, 150, kazbegiLocalizations())

	tours, total, err := repo.List("", "created_at", "desc", 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, tours[0].Localizations, 3)
}

func TestTourRepository_ListUnknownLocaleIsEmptyNotError(t *testing.T) {
	repo := testTourRepo(t)
	insertTour(t, repo, 150, kazbegiLocalizations())

	tours, total, err := repo.List("fr", "created_at", "desc", 10, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, tours)
}

func TestTourRepository_ListSortsAndPaginates(t *testing.T) {
	repo := testTourRepo(t)
	for i, price := range []float64{300, 100, 200} {
		insertTour(t, repo, price, []models.TourLocalization{
			{Locale: "en", Name: "Tour " + string(rune('A'+i)), Destination: "Tbilisi", Description: "d"},
		})
	}

	tours, total, err := repo.List("", "total_price", "asc", 2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, tours, 2)
	require.Equal(t, float64(100), tours[0].TotalPrice)
	require.Equal(t, float64(200), tours[1].TotalPrice)

	tours, _, err = repo.List("", "total_price", "asc", 2, 2)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	require.Equal(t, float64(300), tours[0].TotalPrice)
}

func TestTourRepository_NameCollisionAcrossLocales(t *testing.T) {
	repo := testTourRepo(t)
	insertTour(t, repo, 150, kazbegiLocalizations())

	taken, err := repo.AnyNameExists([]string{"Казбеги"})
	require.NoError(t, err)
	require.True(t, taken)

	free, err := repo.AnyNameExists([]string{"Mestia"})
	require.NoError(t, err)
	require.False(t, free)

	// the ru name of the stored tour, submitted under a different locale
	dup := &models.Tour{
		ID:               uuid.NewString(),
		TotalPrice:       99,
		ReservationPrice: 20,
		Duration:         1,
		Localizations: []models.TourLocalization{
			{Locale: "en", Name: "Казбеги", Destination: "Kazbegi", Description: "d"},
		},
	}
	created, err := repo.CreateIfNamesFree(dup)
	require.NoError(t, err)
	require.False(t, created)

	_, total, err := repo.List("", "created_at", "desc", 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestTourRepository_GetByIDLocaleFilter(t *testing.T) {
	repo := testTourRepo(t)
	stored := insertTour(t, repo, 150, kazbegiLocalizations())

	tour, err := repo.GetByID(stored.ID, "ru")
	require.NoError(t, err)
	require.Len(t, tour.Localizations, 1)
	require.Equal(t, "Казбеги", tour.Localizations[0].Name)

	tour, err = repo.GetByID(stored.ID, "")
	require.NoError(t, err)
	require.Len(t, tour.Localizations, 3)

	_, err = repo.GetByID(uuid.NewString(), "")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
