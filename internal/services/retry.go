package services

import (
	"context"
	"time"

	"github.com/googleapis/gax-go/v2"

	"github.com/parables-of-the-word-api/pkg/llm"
)

// RetryPolicy bounds each model call with a timeout and retries transient
// failures with exponential backoff
type RetryPolicy struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    gax.Backoff
}

// DefaultRetryPolicy allows one retry after a short pause
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Timeout:    45 * time.Second,
		MaxRetries: 1,
		Backoff: gax.Backoff{
			Initial:    250 * time.Millisecond,
			Max:        2 * time.Second,
			Multiplier: 2,
		},
	}
}

func (p RetryPolicy) do(ctx context.Context, op func(ctx context.Context) error) error {
	bo := p.Backoff
	for attempt := 0; ; attempt++ {
		err := p.attempt(ctx, op)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || attempt >= p.MaxRetries || !llm.IsTransient(err) {
			return err
		}
		if sleepErr := gax.Sleep(ctx, bo.Pause()); sleepErr != nil {
			return err
		}
	}
}

func (p RetryPolicy) attempt(ctx context.Context, op func(ctx context.Context) error) error {
	if p.Timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return op(attemptCtx)
}
