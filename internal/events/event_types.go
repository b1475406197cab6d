package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactMessageReceived EventType = "contact_message_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactMessageReceivedPayload payload.
type ContactMessageReceivedPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
