package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wayfarer/internal/entities"
	"github.com/mrlokans/wayfarer/internal/events"
	"github.com/mrlokans/wayfarer/internal/tasks"
)

type recordingPublisher struct {
	bookings []events.BookingCreated
	contacts []events.ContactReceived
	err      error
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, e events.BookingCreated) error {
	p.bookings = append(p.bookings, e)
	return p.err
}

func (p *recordingPublisher) PublishContactReceived(_ context.Context, e events.ContactReceived) error {
	p.contacts = append(p.contacts, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type recordingQueue struct {
	tasks []backlite.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, tasks ...backlite.Task) ([]string, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, tasks...)
	return []string{"task-1"}, nil
}

func TestDispatcher_BookingCreated(t *testing.T) {
	publisher := &recordingPublisher{}
	queue := &recordingQueue{}
	dispatcher := NewDispatcher(publisher, queue)
	occurred := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	dispatcher.now = func() time.Time { return occurred }

	destinationID := "d1"
	userID := "u1"
	dispatcher.BookingCreated(context.Background(), &entities.Booking{
		ID:            "b1",
		UserID:        &userID,
		DestinationID: &destinationID,
		Destination:   &entities.Destination{ID: "d1", Name: "Kyoto"},
		Email:         "ada@example.com",
		DepartureDate: time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC),
		Travelers:     2,
		Status:        entities.BookingStatusPending,
	})

	require.Len(t, publisher.bookings, 1)
	event := publisher.bookings[0]
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "d1", event.DestinationID)
	assert.Equal(t, "Kyoto", event.Destination)
	assert.Equal(t, "2027-04-01", event.DepartureDate)
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, occurred, event.OccurredAt)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, tasks.SendBookingConfirmationTask{BookingID: "b1"}, queue.tasks[0])
}

func TestDispatcher_ContactReceived(t *testing.T) {
	publisher := &recordingPublisher{}
	queue := &recordingQueue{}
	dispatcher := NewDispatcher(publisher, queue)

	dispatcher.ContactReceived(context.Background(), &entities.ContactMessage{
		ID:      "c1",
		Email:   "ada@example.com",
		Subject: "Group trip",
	})

	require.Len(t, publisher.contacts, 1)
	assert.Equal(t, "c1", publisher.contacts[0].ContactID)
	require.Len(t, queue.tasks, 1)
	assert.Equal(t, tasks.NotifyContactMessageTask{ContactID: "c1"}, queue.tasks[0])
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	queue := &recordingQueue{err: errors.New("database is locked")}
	dispatcher := NewDispatcher(publisher, queue)

	assert.NotPanics(t, func() {
		dispatcher.BookingCreated(context.Background(), &entities.Booking{ID: "b1"})
		dispatcher.ContactReceived(context.Background(), &entities.ContactMessage{ID: "c1"})
	})
	assert.Len(t, publisher.bookings, 1)
	assert.Len(t, publisher.contacts, 1)
}

func TestDispatcher_WithoutChannels(t *testing.T) {
	dispatcher := NewDispatcher(nil, nil)

	assert.NotPanics(t, func() {
		dispatcher.BookingCreated(context.Background(), &entities.Booking{ID: "b1"})
		dispatcher.ContactReceived(context.Background(), &entities.ContactMessage{ID: "c1"})
	})
}

func TestLogMailer(t *testing.T) {
	mailer := LogMailer{From: "bookings@wayfarer.travel"}

	assert.NoError(t, mailer.Send(context.Background(), "ada@example.com", "Hello", "Body"))
}
