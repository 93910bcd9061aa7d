package events

import "time"

const RecordsUploadedTopic = "records.upload.v1"

type RecordsUploadedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	FileName   string    `json:"file_name"`
	FileSize   int       `json:"file_size"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
