package llm

import (
	"context"
	"time"
)

// RetryOptions configures the retry decorator.
type RetryOptions struct {
	// Attempts is the total number of tries, including the first. Values
	// below 1 are coerced to 1.
	Attempts int
	// BaseDelay is the wait before the second attempt; it doubles after each
	// failure and is capped by MaxDelay.
	BaseDelay time.Duration
	// MaxDelay caps the backoff. Zero means no cap.
	MaxDelay time.Duration
}

// retryProvider wraps an inner Provider with capped exponential backoff.
type retryProvider struct {
	inner Provider
	opts  RetryOptions
}

// WithRetry decorates p with capped exponential backoff. Retry is middleware
// around the provider, composed where the service is wired together — the
// orchestrator itself performs no retries.
func WithRetry(p Provider, opts RetryOptions) Provider {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 2 * time.Second
	}
	return &retryProvider{inner: p, opts: opts}
}

// Complete tries the inner provider up to Attempts times, doubling the delay
// between failures. Context cancellation aborts both the wait and the loop.
func (r *retryProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	delay := r.opts.BaseDelay
	var lastErr error

	for attempt := 0; attempt < r.opts.Attempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return "", ctx.Err()
			case <-timer.C:
			}
			delay *= 2
			if r.opts.MaxDelay > 0 && delay > r.opts.MaxDelay {
				delay = r.opts.MaxDelay
			}
		}

		text, err := r.inner.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
