package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parables-of-the-word-api/internal/models"
)

// VertexModel implements Model using Gemini on Google Cloud Vertex AI
type VertexModel struct {
	client *genai.Client
	model  string
}

// NewVertexModel creates a Vertex AI Gemini client. Credentials come from
// ADC unless cfg.CredentialsFile is set.
func NewVertexModel(ctx context.Context, cfg Config) (*VertexModel, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for Vertex AI")
	}

	location := cfg.Location
	if location == "" {
		location = "global"
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexModel{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Close closes the Vertex AI client
func (m *VertexModel) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// GenerateJSON generates a structured JSON response
func (m *VertexModel) GenerateJSON(ctx context.Context, prompt string, schema ObjectSchema) (string, error) {
	model := m.client.GenerativeModel(m.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = vertexSchema(schema)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyVertexError(err)
	}
	return extractVertexText(resp), nil
}

// Chat sends a message on a chat session seeded with history
func (m *VertexModel) Chat(ctx context.Context, systemInstruction string, history []models.ChatMessage, message string) (string, error) {
	model := m.client.GenerativeModel(m.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	cs := model.StartChat()
	cs.History = vertexHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", classifyVertexError(err)
	}
	return extractVertexText(resp), nil
}

func vertexSchema(schema ObjectSchema) *genai.Schema {
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

func vertexHistory(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func extractVertexText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

func classifyVertexError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return transient(err)
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.Internal, codes.DeadlineExceeded:
			return transient(err)
		}
	}
	return fmt.Errorf("vertex AI request failed: %w", err)
}
