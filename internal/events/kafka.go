package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mrlokans/wayfarer/internal/config"
)

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to Kafka, one topic per event family.
type KafkaPublisher struct {
	writer        messageWriter
	bookingsTopic string
	contactTopic  string
	now           func() time.Time
}

// NewKafkaPublisher creates a synchronous publisher for the configured brokers.
// Topics are set per message, so a single writer serves both families.
func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, cfg)
}

func newKafkaPublisher(writer messageWriter, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		writer:        writer,
		bookingsTopic: cfg.BookingsTopic,
		contactTopic:  cfg.ContactTopic,
		now:           time.Now,
	}
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	event.Type = TypeBookingCreated
	return p.publish(ctx, p.bookingsTopic, event.BookingID, event)
}

func (p *KafkaPublisher) PublishContactReceived(ctx context.Context, event ContactReceived) error {
	event.Type = TypeContactReceived
	return p.publish(ctx, p.contactTopic, event.ContactID, event)
}

func (p *KafkaPublisher) publish(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  p.now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("[EVENTS] Published to %s (key %s)", topic, key)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
