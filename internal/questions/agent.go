package questions

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/mandate/internal/llm"
	"github.com/JaimeStill/mandate/internal/prompts"
)

// Agent generates comprehension questions from regulations. Prompts are
// built one per regulation and submitted as a single generation batch;
// the parsed result always matches the input length and order.
type Agent struct {
	gen    llm.Generator
	opts   llm.Options
	retry  llm.RetryConfig
	logger *slog.Logger
}

// NewAgent creates a question generation agent.
func NewAgent(gen llm.Generator, opts llm.Options, retry llm.RetryConfig, logger *slog.Logger) *Agent {
	return &Agent{
		gen:    gen,
		opts:   opts,
		retry:  retry,
		logger: logger.With("agent", "question"),
	}
}

// Generate returns one question/answer pair per regulation statement,
// order-preserving.
func (a *Agent) Generate(ctx context.Context, regulations []string) ([]QA, error) {
	if len(regulations) == 0 {
		return nil, nil
	}

	batch := make([]string, len(regulations))
	for i, regulation := range regulations {
		batch[i] = prompts.Question(regulation)
	}

	results, err := llm.GenerateParsed(
		ctx, a.gen,
		batch,
		a.opts, a.retry,
		ParseTagged,
	)
	if err != nil {
		return nil, err
	}

	a.logger.InfoContext(
		ctx, "questions generated",
		"count", len(results),
	)

	return results, nil
}
