// Package contacts provides database operations for contact form messages.
package contacts

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

// Repository handles all contact message database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new contacts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateContactMessage stores a message; new messages are always unread.
func (r *Repository) CreateContactMessage(ctx context.Context, message *entities.ContactMessage) error {
	message.Read = false
	return database.Translate(r.db.WithContext(ctx).Create(message).Error)
}

// GetContactMessageByID retrieves a message by ID.
func (r *Repository) GetContactMessageByID(ctx context.Context, id string) (*entities.ContactMessage, error) {
	var message entities.ContactMessage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &message, nil
}

// CountUnread returns how many messages have not been read yet.
func (r *Repository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ContactMessage{}).Where("read = ?", false).Count(&count).Error
	return count, err
}
