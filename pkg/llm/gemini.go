package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/parables-of-the-word-api/internal/models"
)

// GeminiModel implements Model using the Gemini Developer API
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel creates a Gemini API client authenticated by API key
func NewGeminiModel(ctx context.Context, cfg Config) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required for the Gemini API")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModel{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Close is a no-op; the Gemini client holds no resources that need releasing
func (m *GeminiModel) Close() error {
	return nil
}

// GenerateJSON generates a structured JSON response
func (m *GeminiModel) GenerateJSON(ctx context.Context, prompt string, schema ObjectSchema) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   geminiSchema(schema),
		},
	)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	return resp.Text(), nil
}

// Chat sends a message on a chat seeded with history
func (m *GeminiModel) Chat(ctx context.Context, systemInstruction string, history []models.ChatMessage, message string) (string, error) {
	chat, err := m.client.Chats.Create(ctx, m.model,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
		geminiHistory(history),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", classifyGeminiError(err)
	}
	return resp.Text(), nil
}

func geminiSchema(schema ObjectSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(schema.Properties))
	for _, p := range schema.Properties {
		props[p.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   schema.Required,
	}
}

func geminiHistory(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}

func classifyGeminiError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return transient(err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && retryableStatus(apiErr.Code) {
		return transient(err)
	}
	return fmt.Errorf("gemini API request failed: %w", err)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
