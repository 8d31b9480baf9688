package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/pkg/llm"
)

// insightSchema is the structured output requested from the model
var insightSchema = llm.ObjectSchema{
	Properties: []llm.Property{
		{Name: "scriptureText", Description: "The full text of the parable from the Bible."},
		{Name: "interpretation", Description: "The deep spiritual and theological meaning."},
		{Name: "clarification", Description: "Historical or cultural context clarifications."},
		{Name: "modernExample", Description: "A relatable modern application."},
	},
	Required: []string{"scriptureText", "interpretation", "clarification", "modernExample"},
}

// insightPayload mirrors insightSchema
type insightPayload struct {
	ScriptureText  string `json:"scriptureText"`
	Interpretation string `json:"interpretation"`
	Clarification  string `json:"clarification"`
	ModernExample  string `json:"modernExample"`
}

// InsightService generates commentary for a parable
type InsightService struct {
	model    llm.Model
	retry    RetryPolicy
	logger   *zap.Logger
	inflight *inflight
}

// NewInsightService creates a new insight service
func NewInsightService(model llm.Model, retry RetryPolicy, logger *zap.Logger) *InsightService {
	return &InsightService{
		model:    model,
		retry:    retry,
		logger:   logger,
		inflight: newInflight(),
	}
}

// FetchInsights asks the model for the scripture text, interpretation,
// cultural clarification and modern example of a parable
func (s *InsightService) FetchInsights(ctx context.Context, parable models.Parable) (*models.Insights, error) {
	prompt := insightPrompt(parable)

	var raw string
	err := s.retry.do(ctx, func(ctx context.Context) error {
		var err error
		raw, err = s.model.GenerateJSON(ctx, prompt, insightSchema)
		return err
	})
	if err != nil {
		s.logger.Warn("insight request failed", zap.String("parable", parable.ID), zap.Error(err))
		return nil, fmt.Errorf("fetch insights for %s: %w", parable.ID, err)
	}

	insights, err := ParseInsights(raw)
	if err != nil {
		s.logger.Warn("insight response rejected",
			zap.String("parable", parable.ID),
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch insights for %s: %w", parable.ID, err)
	}

	s.logger.Debug("insights generated", zap.String("parable", parable.ID))
	return insights, nil
}

// FetchInsightsFor is FetchInsights on behalf of a viewer. A viewer's fetch
// is cancelled when the same viewer asks for a different parable, and
// repeated requests for the same parable share one model call. An empty
// viewer gets an unsupervised fetch.
func (s *InsightService) FetchInsightsFor(ctx context.Context, viewer string, parable models.Parable) (*models.Insights, error) {
	if viewer == "" {
		return s.FetchInsights(ctx, parable)
	}

	v, err := s.inflight.run(ctx, viewer, parable.ID, func(ctx context.Context) (any, error) {
		return s.FetchInsights(ctx, parable)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Insights), nil
}

func insightPrompt(p models.Parable) string {
	return fmt.Sprintf(`Provide a comprehensive breakdown for the parable: "%s" from %s.
Your response must include:
1. The full scripture text of the parable (English Standard Version or similar).
2. A deep spiritual interpretation explaining the primary lessons and theological significance.
3. Historical or cultural clarification for any confusing ancient idioms or customs.
4. A practical, relatable modern-day example that demonstrates how this teaching applies to a person's life today.

Return ONLY a JSON object with the fields scriptureText, interpretation, clarification and modernExample.`,
		p.Title, p.Reference)
}

// ParseInsights decodes a model response into Insights. Every field must be
// present and non-blank.
func ParseInsights(raw string) (*models.Insights, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var payload insightPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"scriptureText", payload.ScriptureText},
		{"interpretation", payload.Interpretation},
		{"clarification", payload.Clarification},
		{"modernExample", payload.ModernExample},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteResponse, strings.Join(missing, ", "))
	}

	return &models.Insights{
		ScriptureText:  payload.ScriptureText,
		Interpretation: payload.Interpretation,
		Clarification:  payload.Clarification,
		ModernExample:  payload.ModernExample,
	}, nil
}

// stripCodeFence removes a markdown code block wrapped around a response
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
