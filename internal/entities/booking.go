package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	UserID        *string       `gorm:"index;size:36" json:"user_id"` // nil for guest bookings
	DestinationID *string       `gorm:"index;size:36" json:"destination_id"`
	Destination   *Destination  `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	Name          string        `gorm:"size:200" json:"name"`
	Email         string        `gorm:"size:255" json:"email"`
	Phone         string        `gorm:"size:50" json:"phone"`
	DepartureDate time.Time     `json:"departure_date"`
	Travelers     int           `json:"travelers"`
	Comments      string        `gorm:"type:text" json:"comments,omitempty"`
	Status        BookingStatus `gorm:"size:20;index;default:'pending'" json:"status"`
	CreatedAt     time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}
