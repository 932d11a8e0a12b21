package dto

import (
	"time"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// SendMessageRequest payload. The sender is the authenticated caller.
type SendMessageRequest struct {
	ReceiverIDs []string           `json:"receiverIds"`
	Content     string             `json:"content"`
	MediaURL    *string            `json:"mediaUrl"`
	Type        domain.MessageType `json:"type"`
}

// MessageResponse is the outward message shape.
type MessageResponse struct {
	ID          string             `json:"id"`
	SenderID    string             `json:"senderId"`
	ReceiverIDs []string           `json:"receiverIds"`
	Content     string             `json:"content"`
	MediaURL    *string            `json:"mediaUrl"`
	Type        domain.MessageType `json:"type"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewMessageResponse maps a domain message.
func NewMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		ReceiverIDs: msg.ReceiverIDs,
		Content:     msg.Content,
		MediaURL:    msg.MediaURL,
		Type:        msg.Type,
		CreatedAt:   msg.CreatedAt,
	}
}

// NewMessageResponses maps a slice.
func NewMessageResponses(msgs []domain.Message) []MessageResponse {
	result := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, NewMessageResponse(&msgs[i]))
	}
	return result
}
