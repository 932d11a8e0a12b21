package domain

import "time"

// MessageType differentiates message payload kinds.
type MessageType string

const (
	MessageTypeText  MessageType = "TEXT"
	MessageTypeImage MessageType = "IMAGE"
	MessageTypeVideo MessageType = "VIDEO"
)

// Valid reports whether the type is one of the supported kinds.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo:
		return true
	}
	return false
}

// Message is a direct message fanned out to one or more receivers.
type Message struct {
	ID          string
	SenderID    string
	ReceiverIDs []string
	Content     string
	MediaURL    *string
	Type        MessageType
	CreatedAt   time.Time
}
