package handlers

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/internal/api/presenters"
	"MediAssist-Backend/pkg/chat"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
		GetChatHistory(c *fiber.Ctx) error
		GetChatSessions(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.chatService.Chat(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGeminiProcessingFailed) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *chatHandler) GetChatHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("session_id")

	res, err := h.chatService.GetChatHistory(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetChatHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChatHistory)
}

func (h *chatHandler) GetChatSessions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.chatService.GetChatSessions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetChatSessions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChatSessions)
}
