package services

import (
	"context"
	"errors"
	"strings"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
	"citytransit/internal/utils"
)

// ErrEmptyMessage is returned when a chat message is blank after trimming.
var ErrEmptyMessage = errors.New("message must not be empty")

var (
	routeKeywords = []string{"route", "reach", "go to"}
	fareKeywords  = []string{"fare", "cost", "price"}
)

// Canned assistant replies keyed by intent. Replies are deliberately not
// parameterized by the conversation content.
var cannedReplies = map[models.IntentTag]string{
	models.IntentRouteRequest: "Based on current traffic conditions, I recommend taking the Metro Line 1 to Central Station, then Bus 42A to your destination. This route takes about 32 minutes and costs ₹45. You'll arrive 10 minutes early!",
	models.IntentFareInquiry:  "The most cost-effective option is Bus 15 for ₹25. If you prefer faster travel, Metro + Bus combination costs ₹45 but saves 16 minutes.",
	models.IntentQuery:        "I can help you with route planning, fare comparisons, real-time delays, and transport schedules. What would you like to know?",
}

// Classify tags a message by keyword matching, route keywords taking
// priority over fare keywords. The same classifier serves both the
// submission path and the display path.
func Classify(text string) models.IntentTag {
	lowered := strings.ToLower(text)

	for _, keyword := range routeKeywords {
		if strings.Contains(lowered, keyword) {
			return models.IntentRouteRequest
		}
	}
	for _, keyword := range fareKeywords {
		if strings.Contains(lowered, keyword) {
			return models.IntentFareInquiry
		}
	}

	return models.IntentQuery
}

// Respond returns the canned reply for an intent.
func Respond(intent models.IntentTag) string {
	if reply, ok := cannedReplies[intent]; ok {
		return reply
	}
	return cannedReplies[models.IntentQuery]
}

type ChatService interface {
	// Send persists the message, classifies it and attaches the reply in
	// one logical operation. The message is immutable afterwards.
	Send(ctx context.Context, userID, message string) (*models.ChatMessage, error)
	// History returns the user's most recent messages in creation order.
	History(ctx context.Context, userID string) ([]*models.ChatMessage, error)
}

type chatService struct {
	chatRepo interfaces.ChatRepository
}

func NewChatService(chatRepo interfaces.ChatRepository) ChatService {
	return &chatService{
		chatRepo: chatRepo,
	}
}

func (s *chatService) Send(ctx context.Context, userID, message string) (*models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	record := &models.ChatMessage{
		UserID:  userID,
		Message: message,
		Reply:   nil,
	}
	if err := s.chatRepo.CreateMessage(ctx, record); err != nil {
		return nil, err
	}

	intent := Classify(message)
	return s.chatRepo.AttachReply(ctx, record.ID, Respond(intent), intent)
}

func (s *chatService) History(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	return s.chatRepo.ListByUser(ctx, userID, utils.ChatHistoryLimit)
}
