package extraction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mandate/internal/documents"
	"github.com/JaimeStill/mandate/internal/obligations"
	"github.com/JaimeStill/mandate/internal/workflow"
)

type repo struct {
	rt     *workflow.Runtime
	logger *slog.Logger
}

// New creates an extraction system implementing the System interface.
// It internally constructs the workflow runtime from the provided
// dependencies.
func New(
	agent *obligations.Agent,
	docs documents.System,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Documents: docs,
		Agent:     agent,
		Logger:    logger.With("workflow", "extract"),
	}
	return &repo{
		rt:     rt,
		logger: logger.With("system", "extraction"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Extract(ctx context.Context, cmd workflow.Command) (*workflow.Result, error) {
	result, err := workflow.Execute(ctx, r.rt, cmd)
	if err != nil {
		return nil, fmt.Errorf("extract %s pages %d-%d: %w",
			cmd.DocumentName, cmd.StartPage, cmd.EndPage, err)
	}

	r.logger.Info(
		"extraction complete",
		"document", result.DocumentName,
		"obligations", len(result.Obligations),
	)

	return result, nil
}
