package http

import (
	"context"

	"github.com/mrlokans/wayfarer/internal/entities"
	"github.com/mrlokans/wayfarer/internal/seed"
)

// DestinationReader is the read side of the destination catalogue.
// Both the repository and the Redis-backed cache satisfy it.
type DestinationReader interface {
	ListDestinations(ctx context.Context) ([]entities.Destination, error)
	GetDestinationByID(ctx context.Context, id string) (*entities.Destination, error)
}

// BookingStore provides booking persistence.
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *entities.Booking) error
	GetBookingByID(ctx context.Context, id string) (*entities.Booking, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]entities.Booking, error)
}

// ContactStore provides contact message persistence.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, message *entities.ContactMessage) error
}

// Notifier is told about new bookings and contact messages after they are stored.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *entities.Booking)
	ContactReceived(ctx context.Context, message *entities.ContactMessage)
}

// Seeder populates the catalogue and the demo account.
type Seeder interface {
	Run(ctx context.Context) (seed.Result, error)
}

// CacheInvalidator drops cached catalogue data after the catalogue changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// Pinger is a dependency whose liveness is reported by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type nopNotifier struct{}

func (nopNotifier) BookingCreated(context.Context, *entities.Booking) {}
func (nopNotifier) ContactReceived(context.Context, *entities.ContactMessage) {}
