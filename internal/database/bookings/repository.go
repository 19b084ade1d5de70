// Package bookings provides database operations for trip bookings.
//
// Bookings are created and listed only; status transitions happen outside
// this service.
package bookings

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

// Repository handles all booking database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBooking inserts a booking without touching its destination row.
func (r *Repository) CreateBooking(ctx context.Context, booking *entities.Booking) error {
	return database.Translate(r.db.WithContext(ctx).Omit("Destination").Create(booking).Error)
}

// GetBookingByID retrieves a booking with its destination.
func (r *Repository) GetBookingByID(ctx context.Context, id string) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.WithContext(ctx).Preload("Destination").Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &booking, nil
}

// ListBookingsForUser returns the user's bookings, newest first, with destinations.
func (r *Repository) ListBookingsForUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	bookings := []entities.Booking{}
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// CountBookingsByStatus returns how many bookings are in the given state.
func (r *Repository) CountBookingsByStatus(ctx context.Context, status entities.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Booking{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
