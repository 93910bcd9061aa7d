package record

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"record-viewer/internal/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestKafkaEventPublisher_PublishRecordsUploaded(t *testing.T) {
	event := events.RecordsUploadedEvent{
		EventType:  "records_uploaded",
		RequestID:  "rid-1",
		FileName:   "staff.xlsx",
		FileSize:   42,
		Message:    "saved",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("writes one message", func(t *testing.T) {
		w := &captureWriter{}
		p := newKafkaEventPublisher(w, "")

		assert.NoError(t, p.PublishRecordsUploaded(context.Background(), event))

		if assert.Len(t, w.msgs, 1) {
			msg := w.msgs[0]
			assert.Equal(t, events.RecordsUploadedTopic, msg.Topic)
			assert.Equal(t, []byte("staff.xlsx"), msg.Key)

			var got events.RecordsUploadedEvent
			assert.NoError(t, json.Unmarshal(msg.Value, &got))
			assert.Equal(t, event, got)
		}
	})

	t.Run("writer error is returned", func(t *testing.T) {
		w := &captureWriter{err: errors.New("broker down")}
		p := newKafkaEventPublisher(w, "custom.topic")

		err := p.PublishRecordsUploaded(context.Background(), event)

		assert.EqualError(t, err, "broker down")
		assert.Equal(t, "custom.topic", w.msgs[0].Topic)
	})
}
