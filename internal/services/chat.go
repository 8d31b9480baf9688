package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/pkg/llm"
)

// FallbackReply is returned when the model produces no text
const FallbackReply = "I'm sorry, I couldn't process that question."

// ChatService holds conversations about a single parable
type ChatService struct {
	model   llm.Model
	catalog *catalog.Catalog
	retry   RetryPolicy
	logger  *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(model llm.Model, c *catalog.Catalog, retry RetryPolicy, logger *zap.Logger) *ChatService {
	return &ChatService{
		model:   model,
		catalog: c,
		retry:   retry,
		logger:  logger,
	}
}

// OpenSession starts an empty conversation about parable
func (s *ChatService) OpenSession(parable models.Parable) *models.ChatSession {
	return &models.ChatSession{
		ID:         uuid.NewString(),
		ParableID:  parable.ID,
		Transcript: []models.ChatMessage{},
	}
}

// Resume returns session when it belongs to parable and a new session
// otherwise; history does not carry over between parables
func (s *ChatService) Resume(parable models.Parable, session *models.ChatSession) *models.ChatSession {
	if session == nil || session.ID == "" || session.ParableID != parable.ID {
		return s.OpenSession(parable)
	}
	if session.Transcript == nil {
		session.Transcript = []models.ChatMessage{}
	}
	return session
}

// SendMessage sends text with the session transcript as history and appends
// both turns to the transcript. A reply without text becomes FallbackReply.
// On error the transcript is left unchanged.
func (s *ChatService) SendMessage(ctx context.Context, session *models.ChatSession, text string) (string, error) {
	if session == nil {
		return "", ErrNoSession
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	parable, ok := s.catalog.Get(session.ParableID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownParable, session.ParableID)
	}

	for i, msg := range session.Transcript {
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			return "", fmt.Errorf("%w: turn %d has role %q", ErrInvalidTranscript, i, msg.Role)
		}
	}

	instruction := SystemInstruction(parable)

	var reply string
	err := s.retry.do(ctx, func(ctx context.Context) error {
		var err error
		reply, err = s.model.Chat(ctx, instruction, session.Transcript, text)
		return err
	})
	if err != nil {
		s.logger.Warn("chat request failed",
			zap.String("parable", parable.ID),
			zap.String("session", session.ID),
			zap.Error(err),
		)
		return "", fmt.Errorf("chat about %s: %w", parable.ID, err)
	}

	if strings.TrimSpace(reply) == "" {
		s.logger.Info("empty chat reply, using fallback", zap.String("session", session.ID))
		reply = FallbackReply
	}

	session.Transcript = append(session.Transcript,
		models.ChatMessage{Role: models.RoleUser, Content: text},
		models.ChatMessage{Role: models.RoleAssistant, Content: reply},
	)
	return reply, nil
}

// SystemInstruction fixes the scholar persona and scope for a chat about parable
func SystemInstruction(p models.Parable) string {
	return fmt.Sprintf(`You are a world-class Biblical scholar specializing in the Parables of Jesus.
You are helping a user explore "%s" (%s).
Your tone is respectful, wise, and encouraging. Always connect your answers back to the teachings of Jesus and to this parable.
If a user asks about the Greek or Hebrew context, provide that insight.`,
		p.Title, p.Reference)
}
