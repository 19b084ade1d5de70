// Package notifications fans out follow-up work after bookings and contact
// messages are stored: a domain event for other services and a background
// task for email. Both are best-effort; failures are logged.
package notifications

import (
	"context"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wayfarer/internal/entities"
	"github.com/mrlokans/wayfarer/internal/events"
	"github.com/mrlokans/wayfarer/internal/tasks"
)

// Enqueuer stores background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, tasks ...backlite.Task) ([]string, error)
}

// Dispatcher reacts to newly stored bookings and contact messages.
type Dispatcher struct {
	publisher events.Publisher
	queue     Enqueuer
	now       func() time.Time
}

// NewDispatcher creates a dispatcher. A nil publisher or queue disables that channel.
func NewDispatcher(publisher events.Publisher, queue Enqueuer) *Dispatcher {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Dispatcher{publisher: publisher, queue: queue, now: time.Now}
}

// BookingCreated publishes booking.created and queues the confirmation email.
func (d *Dispatcher) BookingCreated(ctx context.Context, booking *entities.Booking) {
	event := events.BookingCreated{
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Email:         booking.Email,
		DepartureDate: booking.DepartureDate.Format("2006-01-02"),
		Travelers:     booking.Travelers,
		Status:        string(booking.Status),
		OccurredAt:    d.now(),
	}
	if booking.DestinationID != nil {
		event.DestinationID = *booking.DestinationID
	}
	if booking.Destination != nil {
		event.Destination = booking.Destination.Name
	}

	if err := d.publisher.PublishBookingCreated(ctx, event); err != nil {
		log.Printf("[EVENTS] Failed to publish booking %s: %v", booking.ID, err)
	}
	d.enqueue(ctx, tasks.SendBookingConfirmationTask{BookingID: booking.ID})
}

// ContactReceived publishes contact.received and queues the ops notification.
func (d *Dispatcher) ContactReceived(ctx context.Context, message *entities.ContactMessage) {
	event := events.ContactReceived{
		ContactID:  message.ID,
		Email:      message.Email,
		Subject:    message.Subject,
		OccurredAt: d.now(),
	}

	if err := d.publisher.PublishContactReceived(ctx, event); err != nil {
		log.Printf("[EVENTS] Failed to publish contact message %s: %v", message.ID, err)
	}
	d.enqueue(ctx, tasks.NotifyContactMessageTask{ContactID: message.ID})
}

func (d *Dispatcher) enqueue(ctx context.Context, task backlite.Task) {
	if d.queue == nil {
		return
	}
	if _, err := d.queue.Enqueue(ctx, task); err != nil {
		log.Printf("[TASK ERROR] Failed to enqueue %s: %v", task.Config().Name, err)
	}
}
