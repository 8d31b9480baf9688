// Package llmtest provides a scriptable llm.Model for tests.
package llmtest

import (
	"context"
	"slices"
	"sync"

	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/pkg/llm"
)

// GenerateFunc handles a GenerateJSON call
type GenerateFunc func(ctx context.Context, prompt string, schema llm.ObjectSchema) (string, error)

// ChatFunc handles a Chat call
type ChatFunc func(ctx context.Context, systemInstruction string, history []models.ChatMessage, message string) (string, error)

// ChatCall records the arguments of a Chat call
type ChatCall struct {
	SystemInstruction string
	History           []models.ChatMessage
	Message           string
}

// Model is an llm.Model whose responses are supplied by the test
type Model struct {
	OnGenerate GenerateFunc
	OnChat     ChatFunc

	mu      sync.Mutex
	prompts []string
	schemas []llm.ObjectSchema
	chats   []ChatCall
	closed  bool
}

var _ llm.Model = (*Model)(nil)

// Replying returns a Model whose GenerateJSON always returns text
func Replying(text string) *Model {
	return &Model{
		OnGenerate: func(context.Context, string, llm.ObjectSchema) (string, error) {
			return text, nil
		},
	}
}

// ChatReplying returns a Model whose Chat always returns text
func ChatReplying(text string) *Model {
	return &Model{
		OnChat: func(context.Context, string, []models.ChatMessage, string) (string, error) {
			return text, nil
		},
	}
}

// GenerateJSON records the call and delegates to OnGenerate
func (m *Model) GenerateJSON(ctx context.Context, prompt string, schema llm.ObjectSchema) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.schemas = append(m.schemas, schema)
	fn := m.OnGenerate
	m.mu.Unlock()

	if fn == nil {
		return "", nil
	}
	return fn(ctx, prompt, schema)
}

// Chat records the call and delegates to OnChat
func (m *Model) Chat(ctx context.Context, systemInstruction string, history []models.ChatMessage, message string) (string, error) {
	m.mu.Lock()
	m.chats = append(m.chats, ChatCall{
		SystemInstruction: systemInstruction,
		History:           slices.Clone(history),
		Message:           message,
	})
	fn := m.OnChat
	m.mu.Unlock()

	if fn == nil {
		return "", nil
	}
	return fn(ctx, systemInstruction, history, message)
}

// Close marks the model closed
func (m *Model) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Prompts returns every prompt passed to GenerateJSON
func (m *Model) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.prompts)
}

// Schemas returns every schema passed to GenerateJSON
func (m *Model) Schemas() []llm.ObjectSchema {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.schemas)
}

// ChatCalls returns every Chat call
func (m *Model) ChatCalls() []ChatCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.chats)
}

// Closed reports whether Close was called
func (m *Model) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
