package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamza-bely/4hybd/internal/api/dto"
	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/service"
	apperrors "github.com/hamza-bely/4hybd/pkg/util"
)

// MessagesHandler exposes direct messaging endpoints.
type MessagesHandler struct {
	messages *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messageService}
}

// Send handles POST /messages. The sender is the authenticated caller.
func (h *MessagesHandler) Send(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	msg, err := h.messages.Send(c.UserContext(), identity.UserID, service.MessageSendInput{
		ReceiverIDs: req.ReceiverIDs,
		Content:     req.Content,
		MediaURL:    req.MediaURL,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMessageResponse(msg)})
}

// ListReceived handles GET /messages/received.
func (h *MessagesHandler) ListReceived(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	msgs, err := h.messages.ListReceived(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMessageResponses(msgs)})
}

// ListSent handles GET /messages/sent.
func (h *MessagesHandler) ListSent(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	msgs, err := h.messages.ListSent(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMessageResponses(msgs)})
}
