package bookings

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		URL:      filepath.Join(t.TempDir(), "bookings.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB), db.DB
}

func createFixtures(t *testing.T, db *gorm.DB) (*entities.User, *entities.Destination) {
	t.Helper()

	user := &entities.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(user).Error)

	destination := &entities.Destination{Name: "Kyoto", Price: "From $1,899"}
	require.NoError(t, db.Create(destination).Error)

	return user, destination
}

func TestRepository_CreateBooking(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	user, destination := createFixtures(t, db)

	booking := &entities.Booking{
		UserID:        &user.ID,
		DestinationID: &destination.ID,
		Name:          "Ada",
		Email:         "ada@example.com",
		Phone:         "+44 20 7946 0000",
		DepartureDate: time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC),
		Travelers:     2,
	}
	require.NoError(t, repo.CreateBooking(ctx, booking))

	assert.Len(t, booking.ID, 36)
	assert.Equal(t, entities.BookingStatusPending, booking.Status)

	stored, err := repo.GetBookingByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Destination)
	assert.Equal(t, "Kyoto", stored.Destination.Name)
	assert.Equal(t, 2, stored.Travelers)
	assert.Equal(t, user.ID, *stored.UserID)
}

func TestRepository_CreateBooking_Guest(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	_, destination := createFixtures(t, db)

	booking := &entities.Booking{
		DestinationID: &destination.ID,
		Name:          "Guest",
		Email:         "guest@example.com",
		Travelers:     1,
	}
	require.NoError(t, repo.CreateBooking(ctx, booking))

	stored, err := repo.GetBookingByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.UserID)
}

func TestRepository_ListBookingsForUser(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	user, destination := createFixtures(t, db)

	other := &entities.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(other).Error)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.CreateBooking(ctx, &entities.Booking{
			UserID:        &user.ID,
			DestinationID: &destination.ID,
			Name:          name,
			Travelers:     1,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.CreateBooking(ctx, &entities.Booking{
		UserID:        &other.ID,
		DestinationID: &destination.ID,
		Name:          "not mine",
		Travelers:     1,
	}))

	bookings, err := repo.ListBookingsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "third", bookings[0].Name)
	assert.Equal(t, "second", bookings[1].Name)
	assert.Equal(t, "first", bookings[2].Name)
	for _, b := range bookings {
		require.NotNil(t, b.Destination)
		assert.Equal(t, destination.ID, b.Destination.ID)
	}
}

func TestRepository_ListBookingsForUser_Empty(t *testing.T) {
	repo, _ := setupTestDB(t)

	bookings, err := repo.ListBookingsForUser(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestRepository_GetBookingByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetBookingByID(context.Background(), "missing")

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_CountBookingsByStatus(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()
	_, destination := createFixtures(t, db)

	require.NoError(t, repo.CreateBooking(ctx, &entities.Booking{DestinationID: &destination.ID, Travelers: 1}))
	require.NoError(t, repo.CreateBooking(ctx, &entities.Booking{DestinationID: &destination.ID, Travelers: 1}))
	require.NoError(t, repo.CreateBooking(ctx, &entities.Booking{
		DestinationID: &destination.ID,
		Travelers:     1,
		Status:        entities.BookingStatusConfirmed,
	}))

	pending, err := repo.CountBookingsByStatus(ctx, entities.BookingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	confirmed, err := repo.CountBookingsByStatus(ctx, entities.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmed)
}
