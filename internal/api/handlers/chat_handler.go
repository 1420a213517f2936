package handlers

import (
	"errors"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/chat"
	"FoodRescue-Backend/pkg/ratelimit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Chat(c *fiber.Ctx) error
		DetectFood(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		limiter     *ratelimit.Limiter
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, limiter *ratelimit.Limiter, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		limiter:     limiter,
		validator:   validator,
	}
}

func (h *chatHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	// Throttle before spending anything on the upstream call.
	if !h.limiter.Allow(c.IP()) {
		return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageRateLimited, nil)
	}

	res, err := h.chatService.Chat(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAINotConfigured),
			errors.Is(err, domain.ErrAIUnauthorized),
			errors.Is(err, domain.ErrAIOverloaded):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageAIServiceUnavailable, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedChat, err)
		}
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

// DetectFood is a best-effort prefill helper: any failure is a plain 500 and
// the client falls back to manual entry.
func (h *chatHandler) DetectFood(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDetectFood, err)
	}

	res, err := h.chatService.DetectFood(c.Context(), file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDetectFood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
