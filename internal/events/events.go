// Package events publishes domain events for downstream consumers.
//
// Events are JSON documents keyed by the entity ID. Publishing happens after
// the entity is stored, so failures are reported to the caller for logging
// and never undo the write.
package events

import (
	"context"
	"time"
)

// Event types.
const (
	TypeBookingCreated  = "booking.created"
	TypeContactReceived = "contact.received"
)

// BookingCreated is emitted after a booking is stored.
type BookingCreated struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	UserID        *string   `json:"user_id"`
	DestinationID string    `json:"destination_id"`
	Destination   string    `json:"destination"`
	Email         string    `json:"email"`
	DepartureDate string    `json:"departure_date"`
	Travelers     int       `json:"travelers"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ContactReceived is emitted after a contact message is stored.
type ContactReceived struct {
	Type       string    `json:"type"`
	ContactID  string    `json:"contact_id"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers events to a topic.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	PublishContactReceived(ctx context.Context, event ContactReceived) error
	Close() error
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, BookingCreated) error   { return nil }
func (NopPublisher) PublishContactReceived(context.Context, ContactReceived) error { return nil }
func (NopPublisher) Close() error                                                  { return nil }
