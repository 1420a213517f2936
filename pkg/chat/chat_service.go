package chat

import (
	"context"
	"mime/multipart"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/pkg/ai"
)

type (
	ChatService interface {
		Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
		DetectFood(ctx context.Context, imageFile *multipart.FileHeader) (domain.DetectFoodResponse, error)
	}

	chatService struct {
		gateway ai.Gateway
	}
)

func NewChatService(gateway ai.Gateway) ChatService {
	return &chatService{gateway: gateway}
}

func (s *chatService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	// Short-circuit before any network I/O when the credential is absent.
	if s.gateway == nil || !s.gateway.Configured() {
		return domain.ChatResponse{}, domain.ErrAINotConfigured
	}

	reply, err := s.gateway.Chat(ctx, req.Messages)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{
		Message: domain.ChatMessage{
			Role:    "assistant",
			Content: reply,
		},
	}, nil
}

func (s *chatService) DetectFood(ctx context.Context, imageFile *multipart.FileHeader) (domain.DetectFoodResponse, error) {
	if s.gateway == nil || !s.gateway.Configured() {
		return domain.DetectFoodResponse{}, domain.ErrAINotConfigured
	}
	return s.gateway.DetectFood(ctx, imageFile)
}
