// Package llm wraps the generative model backends used for parable
// commentary and chat.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/parables-of-the-word-api/internal/models"
)

// ErrTransient marks failures that are worth retrying
var ErrTransient = errors.New("transient model failure")

// Provider names
const (
	ProviderVertex = "vertex"
	ProviderGemini = "gemini"
)

// DefaultModel is used when no model name is configured
const DefaultModel = "gemini-3-flash-preview"

// Property is a single string field of a structured response
type Property struct {
	Name        string
	Description string
}

// ObjectSchema describes a JSON object whose properties are all strings
type ObjectSchema struct {
	Properties []Property
	Required   []string
}

// Model generates text from a backend
type Model interface {
	// GenerateJSON asks for a JSON response conforming to schema and returns
	// the raw response text
	GenerateJSON(ctx context.Context, prompt string, schema ObjectSchema) (string, error)

	// Chat sends message in a conversation governed by systemInstruction,
	// with history as the prior turns, and returns the reply text
	Chat(ctx context.Context, systemInstruction string, history []models.ChatMessage, message string) (string, error)

	// Close releases the backend client
	Close() error
}

// Config selects and configures a backend
type Config struct {
	Provider        string
	Model           string
	ProjectID       string
	Location        string
	APIKey          string
	CredentialsFile string
}

// New creates the backend named by cfg.Provider
func New(ctx context.Context, cfg Config) (Model, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	switch cfg.Provider {
	case ProviderVertex, "":
		return NewVertexModel(ctx, cfg)
	case ProviderGemini:
		return NewGeminiModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// IsTransient reports whether err was marked retryable by a backend
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

func transient(err error) error {
	return fmt.Errorf("%w: %w", ErrTransient, err)
}
