package record

import (
	"context"
	"encoding/json"

	"record-viewer/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=record_event_publisher.go -destination=mock/record_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishRecordsUploaded(ctx context.Context, event events.RecordsUploadedEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishRecordsUploaded(context.Context, events.RecordsUploadedEvent) error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaEventPublisher(writer *kafka.Writer, topic string) EventPublisher {
	return newKafkaEventPublisher(writer, topic)
}

func newKafkaEventPublisher(writer messageWriter, topic string) *kafkaEventPublisher {
	if topic == "" {
		topic = events.RecordsUploadedTopic
	}
	return &kafkaEventPublisher{writer: writer, topic: topic}
}

func (p *kafkaEventPublisher) PublishRecordsUploaded(
	ctx context.Context,
	event events.RecordsUploadedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.FileName),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	})
}
