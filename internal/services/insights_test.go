package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parables-of-the-word-api/internal/models"
	"github.com/parables-of-the-word-api/pkg/llm"
	"github.com/parables-of-the-word-api/pkg/llm/llmtest"
)

const validInsights = `{
	"scriptureText": "A sower went out to sow.",
	"interpretation": "The word is received in different hearts.",
	"clarification": "Sowing preceded ploughing in first-century Galilee.",
	"modernExample": "A teacher whose lesson takes root in one student."
}`

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid", validInsights, nil},
		{"fenced", "```json\n" + validInsights + "\n```", nil},
		{"extra fields tolerated", `{"scriptureText":"a","interpretation":"b","clarification":"c","modernExample":"d","extra":1}`, nil},
		{"empty", "", ErrEmptyResponse},
		{"whitespace", "  \n ", ErrEmptyResponse},
		{"empty fence", "```json\n```", ErrEmptyResponse},
		{"empty object", "{}", ErrIncompleteResponse},
		{"null", "null", ErrIncompleteResponse},
		{"blank field", `{"scriptureText":"a","interpretation":"  ","clarification":"c","modernExample":"d"}`, ErrIncompleteResponse},
		{"not json", "The Sower is about...", ErrMalformedResponse},
		{"array", `["a","b"]`, ErrMalformedResponse},
		{"wrong type", `{"scriptureText":1}`, ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInsights(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ScriptureText)
			assert.NotEmpty(t, got.Interpretation)
			assert.NotEmpty(t, got.Clarification)
			assert.NotEmpty(t, got.ModernExample)
		})
	}
}

func TestParseInsightsNamesMissingFields(t *testing.T) {
	_, err := ParseInsights(`{"scriptureText":"a","clarification":"c"}`)
	require.ErrorIs(t, err, ErrIncompleteResponse)
	assert.Contains(t, err.Error(), "interpretation")
	assert.Contains(t, err.Error(), "modernExample")
	assert.NotContains(t, err.Error(), "scriptureText")
}

func TestFetchInsights(t *testing.T) {
	model := llmtest.Replying(validInsights)
	svc := NewInsightService(model, testRetry(), testLogger())

	got, err := svc.FetchInsights(context.Background(), sower)
	require.NoError(t, err)
	assert.Equal(t, &models.Insights{
		ScriptureText:  "A sower went out to sow.",
		Interpretation: "The word is received in different hearts.",
		Clarification:  "Sowing preceded ploughing in first-century Galilee.",
		ModernExample:  "A teacher whose lesson takes root in one student.",
	}, got)

	prompts := model.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], `"The Sower"`)
	assert.Contains(t, prompts[0], "Matthew 13")

	schemas := model.Schemas()
	require.Len(t, schemas, 1)
	assert.Equal(t, []string{"scriptureText", "interpretation", "clarification", "modernExample"}, schemas[0].Required)
	assert.Len(t, schemas[0].Properties, 4)
}

func TestFetchInsightsEmptyObjectFails(t *testing.T) {
	svc := NewInsightService(llmtest.Replying("{}"), testRetry(), testLogger())

	got, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, ErrIncompleteResponse)
	assert.Nil(t, got)
}

func TestFetchInsightsEmptyBodyFails(t *testing.T) {
	svc := NewInsightService(llmtest.Replying(""), testRetry(), testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFetchInsightsRetriesTransientOnce(t *testing.T) {
	var calls atomic.Int32
	model := &llmtest.Model{
		OnGenerate: func(context.Context, string, llm.ObjectSchema) (string, error) {
			if calls.Add(1) == 1 {
				return "", errors.Join(llm.ErrTransient, errors.New("unavailable"))
			}
			return validInsights, nil
		},
	}
	svc := NewInsightService(model, testRetry(), testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchInsightsGivesUpAfterRetry(t *testing.T) {
	unavailable := errors.New("unavailable")
	var calls atomic.Int32
	model := &llmtest.Model{
		OnGenerate: func(context.Context, string, llm.ObjectSchema) (string, error) {
			calls.Add(1)
			return "", errors.Join(llm.ErrTransient, unavailable)
		},
	}
	svc := NewInsightService(model, testRetry(), testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, unavailable)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFetchInsightsDoesNotRetryPermanentErrors(t *testing.T) {
	denied := errors.New("permission denied")
	var calls atomic.Int32
	model := &llmtest.Model{
		OnGenerate: func(context.Context, string, llm.ObjectSchema) (string, error) {
			calls.Add(1)
			return "", denied
		},
	}
	svc := NewInsightService(model, testRetry(), testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, denied)
	assert.EqualValues(t, 1, calls.Load())
}

func TestFetchInsightsDoesNotRetryMalformedResponses(t *testing.T) {
	model := llmtest.Replying("not json")
	svc := NewInsightService(model, testRetry(), testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Len(t, model.Prompts(), 1)
}

func TestFetchInsightsAttemptTimeout(t *testing.T) {
	model := &llmtest.Model{
		OnGenerate: func(ctx context.Context, _ string, _ llm.ObjectSchema) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	policy := testRetry()
	policy.Timeout = 10 * time.Millisecond
	policy.MaxRetries = 0
	svc := NewInsightService(model, policy, testLogger())

	_, err := svc.FetchInsights(context.Background(), sower)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// blockingModel blocks GenerateJSON for each parable until released
type blockingModel struct {
	*llmtest.Model
	started chan string
	release chan struct{}
	calls   atomic.Int32
}

func newBlockingModel() *blockingModel {
	b := &blockingModel{
		started: make(chan string, 8),
		release: make(chan struct{}),
	}
	b.Model = &llmtest.Model{
		OnGenerate: func(ctx context.Context, prompt string, _ llm.ObjectSchema) (string, error) {
			b.calls.Add(1)
			b.started <- prompt
			select {
			case <-b.release:
				return validInsights, nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
	}
	return b
}

func TestFetchInsightsForSharesSameParable(t *testing.T) {
	model := newBlockingModel()
	svc := NewInsightService(model, testRetry(), testLogger())

	var wg sync.WaitGroup
	results := make([]error, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.FetchInsightsFor(context.Background(), "viewer-1", sower)
		}(i)
		if i == 0 {
			<-model.started
		}
	}

	// the joiners have no call of their own to wait for, so give them a
	// moment to attach before releasing the shared one
	time.Sleep(20 * time.Millisecond)
	close(model.release)
	wg.Wait()

	for _, err := range results {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, model.calls.Load())
	assert.Zero(t, svc.inflight.outstanding())
}

func TestFetchInsightsForSupersedesPreviousSelection(t *testing.T) {
	model := newBlockingModel()
	svc := NewInsightService(model, testRetry(), testLogger())

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.FetchInsightsFor(context.Background(), "viewer-1", sower)
		firstErr <- err
	}()
	assert.Contains(t, <-model.started, "The Sower")

	secondErr := make(chan error, 1)
	go func() {
		_, err := svc.FetchInsightsFor(context.Background(), "viewer-1", prodigal)
		secondErr <- err
	}()

	assert.ErrorIs(t, <-firstErr, ErrSuperseded)
	assert.Contains(t, <-model.started, "The Prodigal Son")

	close(model.release)
	assert.NoError(t, <-secondErr)
	assert.Zero(t, svc.inflight.outstanding())
}

func TestFetchInsightsForIsolatesViewers(t *testing.T) {
	model := newBlockingModel()
	svc := NewInsightService(model, testRetry(), testLogger())

	errs := make(chan error, 2)
	go func() {
		_, err := svc.FetchInsightsFor(context.Background(), "viewer-1", sower)
		errs <- err
	}()
	<-model.started
	go func() {
		_, err := svc.FetchInsightsFor(context.Background(), "viewer-2", prodigal)
		errs <- err
	}()
	<-model.started

	close(model.release)
	assert.NoError(t, <-errs)
	assert.NoError(t, <-errs)
	assert.EqualValues(t, 2, model.calls.Load())
}

func TestFetchInsightsForCallerCancelDoesNotAbortFetch(t *testing.T) {
	model := newBlockingModel()
	svc := NewInsightService(model, testRetry(), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := svc.FetchInsightsFor(ctx, "viewer-1", sower)
		leaderErr <- err
	}()
	<-model.started

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	joinerErr := make(chan error, 1)
	go func() {
		_, err := svc.FetchInsightsFor(context.Background(), "viewer-1", sower)
		joinerErr <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(model.release)

	assert.NoError(t, <-joinerErr)
	assert.EqualValues(t, 1, model.calls.Load())
}

func TestFetchInsightsForWithoutViewer(t *testing.T) {
	svc := NewInsightService(llmtest.Replying(validInsights), testRetry(), testLogger())

	got, err := svc.FetchInsightsFor(context.Background(), "", prodigal)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ScriptureText)
	assert.Zero(t, svc.inflight.outstanding())
}
