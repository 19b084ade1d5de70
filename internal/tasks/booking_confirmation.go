package tasks

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wayfarer/internal/entities"
)

// BookingGetter loads a booking with its destination.
type BookingGetter interface {
	GetBookingByID(ctx context.Context, id string) (*entities.Booking, error)
}

// SendBookingConfirmationTask mails the traveller a summary of their booking.
type SendBookingConfirmationTask struct {
	BookingID string `json:"booking_id"`
}

// Config returns the queue configuration for booking confirmations.
func (t SendBookingConfirmationTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "send_booking_confirmation",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SendBookingConfirmationProcessor creates a processor function for SendBookingConfirmationTask.
func SendBookingConfirmationProcessor(bookings BookingGetter, mailer Mailer) backlite.QueueProcessor[SendBookingConfirmationTask] {
	return func(ctx context.Context, task SendBookingConfirmationTask) error {
		if bookings == nil || mailer == nil {
			return fmt.Errorf("booking confirmation not configured")
		}

		booking, err := bookings.GetBookingByID(ctx, task.BookingID)
		if err != nil {
			return fmt.Errorf("load booking %s: %w", task.BookingID, err)
		}

		subject, body := bookingConfirmationMessage(booking)
		if err := mailer.Send(ctx, booking.Email, subject, body); err != nil {
			return fmt.Errorf("send confirmation for booking %s: %w", booking.ID, err)
		}

		log.Printf("[TASK] Sent booking confirmation %s to %s", booking.ID, booking.Email)
		return nil
	}
}

func bookingConfirmationMessage(booking *entities.Booking) (string, string) {
	destination := "your destination"
	if booking.Destination != nil {
		destination = booking.Destination.Name
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", booking.Name)
	fmt.Fprintf(&body, "We received your request to travel to %s.\n\n", destination)
	fmt.Fprintf(&body, "Departure: %s\n", booking.DepartureDate.Format("2006-01-02"))
	fmt.Fprintf(&body, "Travelers: %d\n", booking.Travelers)
	fmt.Fprintf(&body, "Status: %s\n", booking.Status)
	fmt.Fprintf(&body, "Reference: %s\n", booking.ID)
	if booking.Comments != "" {
		fmt.Fprintf(&body, "\nYour notes: %s\n", booking.Comments)
	}
	body.WriteString("\nOur team will contact you shortly to confirm the details.\n")

	return "Your Wayfarer booking for " + destination, body.String()
}

// NewSendBookingConfirmationQueue creates a backlite queue for booking confirmations.
func NewSendBookingConfirmationQueue(bookings BookingGetter, mailer Mailer) backlite.Queue {
	return backlite.NewQueue(SendBookingConfirmationProcessor(bookings, mailer))
}
