package obligations

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/mandate/internal/llm"
	"github.com/JaimeStill/mandate/internal/prompts"
)

// Agent extracts obligations from document segments. One extraction
// prompt embeds the full segment; a parse failure on any line discards
// the response and re-prompts the model within the retry bound.
type Agent struct {
	gen    llm.Generator
	opts   llm.Options
	retry  llm.RetryConfig
	logger *slog.Logger
}

// NewAgent creates an extraction agent.
func NewAgent(gen llm.Generator, opts llm.Options, retry llm.RetryConfig, logger *slog.Logger) *Agent {
	return &Agent{
		gen:    gen,
		opts:   opts,
		retry:  retry,
		logger: logger.With("agent", "extraction"),
	}
}

// Extract returns the structured obligations found in a document segment.
func (a *Agent) Extract(ctx context.Context, segment string) ([]Obligation, error) {
	prompt := prompts.Extraction(segment)

	results, err := llm.GenerateParsed(
		ctx, a.gen,
		[]string{prompt},
		a.opts, a.retry,
		func(outputs []string) ([]Obligation, error) {
			return ParseJSONL(outputs[0])
		},
	)
	if err != nil {
		return nil, err
	}

	a.logger.InfoContext(
		ctx, "obligations extracted",
		"count", len(results),
		"segment_bytes", len(segment),
	)

	return results, nil
}
