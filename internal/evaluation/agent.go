package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mandate/internal/llm"
	"github.com/JaimeStill/mandate/internal/prompts"
)

// Agent grades user answers against gold answers. The three input
// slices must be equal length and position-aligned; one evaluation
// prompt is built per triple and submitted as a single generation batch.
type Agent struct {
	gen    llm.Generator
	opts   llm.Options
	retry  llm.RetryConfig
	logger *slog.Logger
}

// NewAgent creates an evaluation agent.
func NewAgent(gen llm.Generator, opts llm.Options, retry llm.RetryConfig, logger *slog.Logger) *Agent {
	return &Agent{
		gen:    gen,
		opts:   opts,
		retry:  retry,
		logger: logger.With("agent", "evaluation"),
	}
}

// Evaluate returns one judgment text per question/gold/user triple,
// order-preserving.
func (a *Agent) Evaluate(ctx context.Context, questions, goldAnswers, userAnswers []string) ([]string, error) {
	if len(goldAnswers) != len(questions) || len(userAnswers) != len(questions) {
		return nil, fmt.Errorf(
			"%w: %d questions, %d gold answers, %d user answers",
			ErrMisalignedInputs, len(questions), len(goldAnswers), len(userAnswers),
		)
	}

	if len(questions) == 0 {
		return nil, nil
	}

	batch := make([]string, len(questions))
	for i := range questions {
		batch[i] = prompts.Judgment(questions[i], goldAnswers[i], userAnswers[i])
	}

	results, err := llm.GenerateParsed(
		ctx, a.gen,
		batch,
		a.opts, a.retry,
		ParseJudgments,
	)
	if err != nil {
		return nil, err
	}

	a.logger.InfoContext(
		ctx, "answers evaluated",
		"count", len(results),
	)

	return results, nil
}
