// Package destinations provides database operations for the destination catalogue.
package destinations

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

// Repository handles all destination database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new destinations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListDestinations returns every destination ordered by name.
func (r *Repository) ListDestinations(ctx context.Context) ([]entities.Destination, error) {
	destinations := []entities.Destination{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&destinations).Error
	return destinations, err
}

// GetDestinationByID retrieves a destination by ID.
func (r *Repository) GetDestinationByID(ctx context.Context, id string) (*entities.Destination, error) {
	var destination entities.Destination
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &destination, nil
}

// GetDestinationByName retrieves a destination by its exact name.
func (r *Repository) GetDestinationByName(ctx context.Context, name string) (*entities.Destination, error) {
	var destination entities.Destination
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&destination).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &destination, nil
}

// CreateDestination inserts a destination. A duplicate name surfaces as database.ErrDuplicate.
func (r *Repository) CreateDestination(ctx context.Context, destination *entities.Destination) error {
	return database.Translate(r.db.WithContext(ctx).Create(destination).Error)
}
