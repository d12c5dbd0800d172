package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mandate/pkg/storage"
)

// GoldKey is the storage key of the shared latest gold answer document.
// Each Generate call overwrites it wholesale; sessions capture their own
// copy at start time.
const GoldKey = "gold/latest.json"

type repo struct {
	agent  *Agent
	store  storage.System
	logger *slog.Logger
}

// New creates a question generation system backed by the given agent
// and blob storage.
func New(agent *Agent, store storage.System, logger *slog.Logger) System {
	return &repo{
		agent:  agent,
		store:  store,
		logger: logger.With("system", "questions"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Generate(ctx context.Context, cmd GenerateCommand) ([]string, error) {
	if len(cmd.Regulations) == 0 {
		return nil, ErrNoRegulations
	}

	statements := make([]string, len(cmd.Regulations))
	for i, regulation := range cmd.Regulations {
		statements[i] = regulation.Regulation
	}

	pairs, err := r.agent.Generate(ctx, statements)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	if err := storage.WriteJSON(ctx, r.store, GoldKey, pairs); err != nil {
		return nil, fmt.Errorf("persist gold answers: %w", err)
	}

	r.logger.Info("gold answer set replaced", "key", GoldKey, "count", len(pairs))

	results := make([]string, len(pairs))
	for i, pair := range pairs {
		results[i] = pair.Question
	}

	return results, nil
}

func (r *repo) LatestGold(ctx context.Context) ([]QA, error) {
	var pairs []QA
	if err := storage.ReadJSON(ctx, r.store, GoldKey, &pairs); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGoldNotFound
		}
		return nil, fmt.Errorf("load gold answers: %w", err)
	}
	return pairs, nil
}
