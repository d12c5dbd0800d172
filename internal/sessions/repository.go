package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/mandate/internal/evaluation"
	"github.com/JaimeStill/mandate/internal/questions"
	"github.com/JaimeStill/mandate/pkg/storage"
)

type repo struct {
	store     storage.System
	gold      questions.System
	evaluator *evaluation.Agent
	logger    *slog.Logger
}

// New creates a session system backed by blob storage. Gold answers are
// sourced from the questions system at session start; the evaluation
// agent grades recorded answers on demand.
func New(store storage.System, gold questions.System, evaluator *evaluation.Agent, logger *slog.Logger) System {
	return &repo{
		store:     store,
		gold:      gold,
		evaluator: evaluator,
		logger:    logger.With("system", "sessions"),
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("sessions/%s.json", id)
}

func answersKey(id uuid.UUID) string {
	return fmt.Sprintf("answers/%s.json", id)
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Start(ctx context.Context, cmd StartCommand) (*Session, error) {
	if len(cmd.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidRequest)
	}

	session := &Session{
		ID:           uuid.New(),
		DocumentName: cmd.DocumentName,
		StartPage:    cmd.StartPage,
		EndPage:      cmd.EndPage,
		Regulations:  cmd.Regulations,
		Questions:    cmd.Questions,
		GoldAnswers:  []questions.QA{},
		CurrentIndex: 0,
	}

	pairs, err := r.gold.LatestGold(ctx)
	switch {
	case errors.Is(err, questions.ErrGoldNotFound):
		r.logger.WarnContext(
			ctx, "no gold set available; session starts ungraded",
			"session_id", session.ID,
		)
	case err != nil:
		return nil, fmt.Errorf("capture gold answers: %w", err)
	default:
		session.GoldAnswers = captureGold(cmd.Questions, pairs)
	}

	if err := storage.WriteJSON(ctx, r.store, sessionKey(session.ID), session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	r.logger.InfoContext(
		ctx, "session started",
		"session_id", session.ID,
		"document", session.DocumentName,
		"questions", len(session.Questions),
		"gold_answers", len(session.GoldAnswers),
	)

	return session, nil
}

// captureGold snapshots the gold pairs whose question text appears in
// the session's question list, preserving session question order.
func captureGold(sessionQuestions []string, pairs []questions.QA) []questions.QA {
	captured := make([]questions.QA, 0, len(sessionQuestions))
	for _, question := range sessionQuestions {
		for _, pair := range pairs {
			if pair.Question == question {
				captured = append(captured, pair)
				break
			}
		}
	}
	return captured
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	var session Session
	if err := storage.ReadJSON(ctx, r.store, sessionKey(id), &session); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &session, nil
}

func (r *repo) Submit(ctx context.Context, id uuid.UUID, cmd SubmitCommand) error {
	records, err := r.loadAnswers(ctx, id)
	if err != nil && !errors.Is(err, ErrAnswersNotFound) {
		return err
	}

	records = append(records, AnswerRecord{
		Question: cmd.Question,
		Answer:   cmd.Answer,
	})

	if err := storage.WriteJSON(ctx, r.store, answersKey(id), records); err != nil {
		return fmt.Errorf("persist answers: %w", err)
	}

	// The answer is committed even when the session document is gone;
	// cursor advancement is best-effort.
	session, err := r.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			r.logger.WarnContext(
				ctx, "answer recorded for unknown session",
				"session_id", id,
			)
			return nil
		}
		return err
	}

	session.CurrentIndex = cmd.Index + 1
	if err := storage.WriteJSON(ctx, r.store, sessionKey(id), session); err != nil {
		return fmt.Errorf("advance session cursor: %w", err)
	}

	r.logger.InfoContext(
		ctx, "answer recorded",
		"session_id", id,
		"index", cmd.Index,
		"current_index", session.CurrentIndex,
	)

	return nil
}

func (r *repo) Answers(ctx context.Context, id uuid.UUID) ([]AnswerRecord, error) {
	return r.loadAnswers(ctx, id)
}

func (r *repo) loadAnswers(ctx context.Context, id uuid.UUID) ([]AnswerRecord, error) {
	var records []AnswerRecord
	if err := storage.ReadJSON(ctx, r.store, answersKey(id), &records); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAnswersNotFound
		}
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return records, nil
}

func (r *repo) Evaluate(ctx context.Context, id uuid.UUID) ([]evaluation.Judgment, error) {
	session, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := r.loadAnswers(ctx, id)
	if err != nil {
		return nil, err
	}

	prompts := make([]string, len(records))
	goldAnswers := make([]string, len(records))
	userAnswers := make([]string, len(records))
	for i, record := range records {
		prompts[i] = record.Question
		goldAnswers[i] = goldAnswer(session.GoldAnswers, record.Question)
		userAnswers[i] = record.Answer
	}

	verdicts, err := r.evaluator.Evaluate(ctx, prompts, goldAnswers, userAnswers)
	if err != nil {
		return nil, err
	}

	judgments := make([]evaluation.Judgment, len(records))
	for i, record := range records {
		judgments[i] = evaluation.Judgment{
			Question:   record.Question,
			GoldAnswer: goldAnswers[i],
			YourAnswer: record.Answer,
			Judgment:   verdicts[i],
		}
	}

	r.logger.InfoContext(
		ctx, "session evaluated",
		"session_id", id,
		"answers", len(judgments),
	)

	return judgments, nil
}

// goldAnswer resolves a recorded question to its captured gold answer by
// exact string match, first match winning. Unmatched questions grade
// against "N/A" rather than failing the evaluation.
func goldAnswer(pairs []questions.QA, question string) string {
	for _, pair := range pairs {
		if pair.Question == question {
			return pair.Answer
		}
	}
	return "N/A"
}
