package service

import (
	"context"
	"errors"

	"learnbotx_backend/internal/model"
	"learnbotx_backend/internal/repository"
	"learnbotx_backend/internal/util"
	"learnbotx_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const chatHistoryLimit = 20

type ChatService struct {
	ChatRepo *repository.ChatRepository
	AI       *AIService
}

func NewChatService(chatRepo *repository.ChatRepository, ai *AIService) *ChatService {
	return &ChatService{ChatRepo: chatRepo, AI: ai}
}

// SendMessage appends the user's message to the conversation (creating one
// when chatID is empty), asks the model for a reply with the full history as
// context, and persists both turns. AI failures degrade to a canned answer
// instead of failing the request.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, chatID, message string) (*model.Chat, *model.ChatMessage, error) {
	var chat *model.Chat

	if chatID != "" {
		found, err := s.ChatRepo.FindByIDAndUser(chatID, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		chat = found
	}

	if chat == nil {
		chat = &model.Chat{
			UserID: userID,
			Title:  chatTitle(message),
		}
		if err := s.ChatRepo.Create(chat); err != nil {
			return nil, nil, err
		}
	}

	userMsg := &model.ChatMessage{Role: "user", Content: message}
	if err := s.ChatRepo.AppendMessage(chat, userMsg); err != nil {
		return nil, nil, err
	}
	chat.Messages = append(chat.Messages, *userMsg)

	var reply string
	if s.AI.Enabled() {
		answer, err := s.AI.Respond(ctx, chat.Messages)
		if err != nil {
			logger.Log.Error("AI response failed", zap.String("chatId", chat.ID), zap.Error(err))
			reply = degradedResponse
		} else {
			reply = answer
		}
	} else {
		reply = fallbackResponse(message)
	}

	aiMsg := &model.ChatMessage{Role: "assistant", Content: reply}
	if err := s.ChatRepo.AppendMessage(chat, aiMsg); err != nil {
		return nil, nil, err
	}
	chat.Messages = append(chat.Messages, *aiMsg)

	return chat, aiMsg, nil
}

func (s *ChatService) History(userID uint) ([]model.Chat, error) {
	return s.ChatRepo.FindRecentByUser(userID, chatHistoryLimit)
}

func (s *ChatService) Get(userID uint, chatID string) (*model.Chat, error) {
	chat, err := s.ChatRepo.FindByIDAndUser(chatID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) Delete(userID uint, chatID string) error {
	chat, err := s.ChatRepo.FindByIDAndUser(chatID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrChatNotFound
		}
		return err
	}
	return s.ChatRepo.Delete(chat)
}

// chatTitle derives a conversation title from its first message.
func chatTitle(message string) string {
	runes := []rune(message)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return message
}
