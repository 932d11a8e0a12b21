package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/events"
	"github.com/hamza-bely/4hybd/internal/repository"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// MessageSendInput describes an outgoing message. The sender always comes
// from the authenticated identity, never from the payload.
type MessageSendInput struct {
	ReceiverIDs []string
	Content     string
	MediaURL    *string
	Type        domain.MessageType
}

// MessageService coordinates direct messaging.
type MessageService struct {
	messages   repository.MessageRepository
	dispatcher events.Dispatcher
}

// NewMessageService builds the service.
func NewMessageService(messages repository.MessageRepository, dispatcher events.Dispatcher) *MessageService {
	return &MessageService{messages: messages, dispatcher: dispatcher}
}

// Send persists a message from senderID to the receivers.
func (s *MessageService) Send(ctx context.Context, senderID string, input MessageSendInput) (*domain.Message, error) {
	if len(input.ReceiverIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one receiver required", nil)
	}
	if input.Type == "" {
		input.Type = domain.MessageTypeText
	}
	if !input.Type.Valid() {
		return nil, apperrors.NewValidationError("unknown message type", map[string]any{"type": string(input.Type)})
	}
	if input.Type == domain.MessageTypeText && strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("content required for text messages", nil)
	}

	msg := &domain.Message{
		SenderID:    senderID,
		ReceiverIDs: input.ReceiverIDs,
		Content:     input.Content,
		MediaURL:    input.MediaURL,
		Type:        input.Type,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMessageSent,
			ActorID:   senderID,
			Timestamp: time.Now(),
			Payload: events.MessageSentPayload{
				MessageID:   msg.ID,
				ReceiverIDs: msg.ReceiverIDs,
				MessageType: msg.Type,
			},
		})
	}
	return msg, nil
}

// ListReceived returns messages addressed to the user.
func (s *MessageService) ListReceived(ctx context.Context, userID string) ([]domain.Message, error) {
	msgs, err := s.messages.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return msgs, nil
}

// ListSent returns messages the user sent.
func (s *MessageService) ListSent(ctx context.Context, userID string) ([]domain.Message, error) {
	msgs, err := s.messages.ListBySender(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return msgs, nil
}
