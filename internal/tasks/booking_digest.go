package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wayfarer/internal/entities"
)

// BookingCounter counts bookings by status.
type BookingCounter interface {
	CountBookingsByStatus(ctx context.Context, status entities.BookingStatus) (int64, error)
}

// UnreadCounter counts unread contact messages.
type UnreadCounter interface {
	CountUnread(ctx context.Context) (int64, error)
}

// BookingDigestTask mails the operations address a summary of open work.
type BookingDigestTask struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

// Config returns the queue configuration for digest tasks.
func (t BookingDigestTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "booking_digest",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   7 * 24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// BookingDigestProcessor creates a processor function for BookingDigestTask.
func BookingDigestProcessor(bookings BookingCounter, messages UnreadCounter, mailer Mailer, opsEmail string) backlite.QueueProcessor[BookingDigestTask] {
	return func(ctx context.Context, task BookingDigestTask) error {
		if bookings == nil || messages == nil || mailer == nil {
			return fmt.Errorf("booking digest not configured")
		}

		pending, err := bookings.CountBookingsByStatus(ctx, entities.BookingStatusPending)
		if err != nil {
			return fmt.Errorf("count pending bookings: %w", err)
		}
		unread, err := messages.CountUnread(ctx)
		if err != nil {
			return fmt.Errorf("count unread messages: %w", err)
		}

		day := task.ScheduledAt
		if day.IsZero() {
			day = time.Now()
		}
		subject := "Wayfarer digest for " + day.Format("2006-01-02")
		body := fmt.Sprintf("Pending bookings: %d\nUnread contact messages: %d\n", pending, unread)

		if err := mailer.Send(ctx, opsEmail, subject, body); err != nil {
			return fmt.Errorf("send digest: %w", err)
		}

		log.Printf("[TASK] Sent digest: %d pending bookings, %d unread messages", pending, unread)
		return nil
	}
}

// NewBookingDigestQueue creates a backlite queue for digest tasks.
func NewBookingDigestQueue(bookings BookingCounter, messages UnreadCounter, mailer Mailer, opsEmail string) backlite.Queue {
	return backlite.NewQueue(BookingDigestProcessor(bookings, messages, mailer, opsEmail))
}
