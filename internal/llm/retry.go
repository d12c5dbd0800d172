package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidGeneration indicates the model produced output that failed
// structural validation on every permitted attempt.
var ErrInvalidGeneration = errors.New("generation output failed validation")

// ParseFunc validates a full generation batch and converts it into typed
// records. Validity is all-or-nothing: an error discards the entire batch.
type ParseFunc[T any] func(outputs []string) ([]T, error)

// GenerateParsed runs the bounded regenerate-and-reparse loop. Each
// attempt regenerates the full prompt batch and parses every output;
// any parse failure discards the batch and re-prompts from scratch after
// the configured backoff. Transport errors from the generator are not
// retried. After MaxAttempts parse failures the final parse error is
// wrapped in ErrInvalidGeneration.
func GenerateParsed[T any](
	ctx context.Context,
	gen Generator,
	prompts []string,
	opts Options,
	retry RetryConfig,
	parse ParseFunc[T],
) ([]T, error) {
	backoff := retry.BackoffDuration()

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		outputs, err := gen.Generate(ctx, prompts, opts)
		if err != nil {
			return nil, err
		}

		parsed, err := parse(outputs)
		if err == nil {
			return parsed, nil
		}
		lastErr = err

		if attempt < retry.MaxAttempts && backoff > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf(
		"%w after %d attempts: %w",
		ErrInvalidGeneration, retry.MaxAttempts, lastErr,
	)
}
