package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wayfarer/internal/entities"
)

// ContactMessageGetter loads a stored contact message.
type ContactMessageGetter interface {
	GetContactMessageByID(ctx context.Context, id string) (*entities.ContactMessage, error)
}

// NotifyContactMessageTask forwards a contact form message to the operations address.
type NotifyContactMessageTask struct {
	ContactID string `json:"contact_id"`
}

// Config returns the queue configuration for contact notifications.
func (t NotifyContactMessageTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "notify_contact_message",
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

// NotifyContactMessageProcessor creates a processor function for NotifyContactMessageTask.
func NotifyContactMessageProcessor(messages ContactMessageGetter, mailer Mailer, opsEmail string) backlite.QueueProcessor[NotifyContactMessageTask] {
	return func(ctx context.Context, task NotifyContactMessageTask) error {
		if messages == nil || mailer == nil {
			return fmt.Errorf("contact notification not configured")
		}
		if opsEmail == "" {
			return fmt.Errorf("operations email not configured")
		}

		message, err := messages.GetContactMessageByID(ctx, task.ContactID)
		if err != nil {
			return fmt.Errorf("load contact message %s: %w", task.ContactID, err)
		}

		subject := "[Contact] " + message.Subject
		body := fmt.Sprintf("From: %s <%s>\nReceived: %s\n\n%s\n",
			message.Name, message.Email, message.CreatedAt.Format(time.RFC1123), message.Message)

		if err := mailer.Send(ctx, opsEmail, subject, body); err != nil {
			return fmt.Errorf("notify contact message %s: %w", message.ID, err)
		}

		log.Printf("[TASK] Forwarded contact message %s to %s", message.ID, opsEmail)
		return nil
	}
}

// NewNotifyContactMessageQueue creates a backlite queue for contact notifications.
func NewNotifyContactMessageQueue(messages ContactMessageGetter, mailer Mailer, opsEmail string) backlite.Queue {
	return backlite.NewQueue(NotifyContactMessageProcessor(messages, mailer, opsEmail))
}
