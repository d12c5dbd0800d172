package sessions

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/mandate/internal/evaluation"
)

// System defines the public contract for session workflow operations.
type System interface {
	Handler() *Handler

	// Start creates a session, captures the gold answers matching the
	// command's questions from the latest gold set, and persists the
	// session document with the cursor at zero.
	Start(ctx context.Context, cmd StartCommand) (*Session, error)

	// Find loads a session document. Returns ErrNotFound when no
	// session with the given id exists.
	Find(ctx context.Context, id uuid.UUID) (*Session, error)

	// Submit appends one record to the session's answer log and, when
	// the session document exists, moves the cursor to Index+1. A
	// missing session document does not fail the submission; the answer
	// is recorded regardless.
	Submit(ctx context.Context, id uuid.UUID, cmd SubmitCommand) error

	// Answers loads the session's answer log. Returns
	// ErrAnswersNotFound when nothing has been submitted.
	Answers(ctx context.Context, id uuid.UUID) ([]AnswerRecord, error)

	// Evaluate grades every recorded answer against the session's
	// captured gold set and returns one judgment per record, in log
	// order.
	Evaluate(ctx context.Context, id uuid.UUID) ([]evaluation.Judgment, error)
}
