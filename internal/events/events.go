package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
)

// Event is published whenever a user or group record changes.
type Event struct {
	Entity    string    `json:"entity"`
	EntityID  uuid.UUID `json:"entityId"`
	Action    string    `json:"action"` // create, update, delete
	Timestamp int64     `json:"timestamp"`
}

// Publisher is the boundary services use to emit lifecycle events.
type Publisher interface {
	Publish(event Event) error
	Close()
}

// EventPublisher publishes lifecycle events to a Pulsar topic.
type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{
		client:   client,
		producer: producer,
	}, nil
}

// Publish serializes the event and sends it to the topic.
func (p *EventPublisher) Publish(event Event) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(context.Background(), &pulsar.ProducerMessage{
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	return nil
}

// Close cleans up the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}
