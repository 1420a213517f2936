package domain

import (
	"errors"
)

var (
	MessageSuccessChat       = "chat reply generated successfully"
	MessageSuccessDetectFood = "food detected successfully"

	MessageFailedChat           = "failed to generate chat reply"
	MessageFailedDetectFood     = "failed to detect food from image"
	MessageRateLimited          = "too many requests, please try again later"
	MessageAIServiceUnavailable = "AI assistant is temporarily unavailable"

	ErrAINotConfigured = errors.New("AI gateway is not configured")
	ErrAIUnauthorized  = errors.New("AI gateway rejected credentials")
	ErrAIOverloaded    = errors.New("AI gateway is overloaded")
	ErrAIEmptyReply    = errors.New("AI gateway returned an empty reply")
)

type (
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=user assistant system"`
		Content string `json:"content" validate:"required,min=1,max=2000"`
	}

	ChatRequest struct {
		Messages []ChatMessage `json:"messages" validate:"required,min=1,max=20,dive"`
	}

	ChatResponse struct {
		Message ChatMessage `json:"message"`
	}

	// DetectFoodResponse carries AI-suggested values the client may use to
	// prefill the posting form. Best effort only.
	DetectFoodResponse struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		Category    string `json:"category"`
	}
)
