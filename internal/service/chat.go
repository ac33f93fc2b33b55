package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/store"
)

// ApologyReply is sent when the coach cannot produce an answer
const ApologyReply = "I'm sorry, I couldn't process your request right now. Please try again."

const coachSystemPrompt = `You are FitGenius AI, a professional fitness and nutrition coach. You provide personalized, science-based advice on:
- Workout routines and exercise techniques
- Nutrition and meal planning
- Health and wellness guidance
- Weight management strategies
- Fitness goal setting and tracking

Keep responses helpful, encouraging, and focused on health and fitness. Always recommend consulting healthcare professionals for medical concerns.`

// ChatService answers coaching questions and keeps the conversation history
type ChatService struct {
	store store.Store
	gen   TextGenerator
	cfg   ProviderConfig
	now   func() time.Time
}

var _ IChatService = (*ChatService)(nil)

// NewChatService creates a new ChatService instance
func NewChatService(s store.Store, gen TextGenerator, cfg ProviderConfig) *ChatService {
	return &ChatService{
		store: s,
		gen:   gen,
		cfg:   cfg.withDefaults(),
		now:   time.Now,
	}
}

// Reply asks the coach about message, returning the apology text on failure
func (s *ChatService) Reply(ctx context.Context, message string) string {
	return resolve("ChatCoach", s.GenerateReply(ctx, message), ApologyReply)
}

// GenerateReply is the generator-only path of Reply
func (s *ChatService) GenerateReply(ctx context.Context, message string) Outcome[string] {
	if s.gen == nil {
		return ExternalFailure[string](genai.ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, genai.Prompt{
		Model:  s.cfg.Model,
		System: coachSystemPrompt,
		User:   message,
	})
	if err != nil {
		return ExternalFailure[string](err)
	}
	if strings.TrimSpace(text) == "" {
		return ExternalFailure[string](genai.ErrEmptyResponse)
	}
	return Ok(text)
}

// Send records message and the coach's reply in the user's first chat
// session, creating one when the user has none. Messages without a user id
// go to a fresh anonymous session.
func (s *ChatService) Send(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrMissingInput)
	}

	session, err := s.sessionFor(ctx, userID)
	if err != nil {
		return "", err
	}

	messages := append(session.Messages, models.ChatMessage{
		Role:      models.ChatRoleUser,
		Content:   message,
		Timestamp: s.now().UnixMilli(),
	})

	reply := s.Reply(ctx, message)
	messages = append(messages, models.ChatMessage{
		Role:      models.ChatRoleAI,
		Content:   reply,
		Timestamp: s.now().UnixMilli(),
	})

	if _, err := s.store.UpdateChatSession(ctx, session.ID, messages); err != nil {
		return "", fmt.Errorf("failed to save chat session: %w", err)
	}
	return reply, nil
}

func (s *ChatService) sessionFor(ctx context.Context, userID string) (*models.ChatSession, error) {
	userID = strings.TrimSpace(userID)
	if userID != "" {
		sessions, err := s.store.GetChatSessionsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load chat sessions: %w", err)
		}
		if first, ok := lo.First(sessions); ok {
			return &first, nil
		}
	}

	session, err := s.store.CreateChatSession(ctx, models.ChatSession{
		UserID:   lo.ToPtr(userID),
		Messages: []models.ChatMessage{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return session, nil
}

// Sessions lists a user's chat sessions, oldest first
func (s *ChatService) Sessions(ctx context.Context, userID string) ([]models.ChatSession, error) {
	sessions, err := s.store.GetChatSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}
