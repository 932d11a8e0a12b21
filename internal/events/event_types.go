package events

import (
	"time"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventMessageSent    EventType = "message_sent"
	EventStoryPosted    EventType = "story_posted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	MessageID   string             `json:"message_id"`
	ReceiverIDs []string           `json:"receiver_ids"`
	MessageType domain.MessageType `json:"message_type"`
}

// StoryPostedPayload payload.
type StoryPostedPayload struct {
	StoryID   string    `json:"story_id"`
	MediaType string    `json:"media_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
