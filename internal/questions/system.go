package questions

import "context"

// System defines the public contract for question generation operations.
type System interface {
	Handler() *Handler

	// Generate produces one question per regulation, persists the full
	// gold question/answer set as the latest gold document, and returns
	// the question strings in input order.
	Generate(ctx context.Context, cmd GenerateCommand) ([]string, error)

	// LatestGold returns the gold question/answer set written by the
	// most recent Generate call. Returns ErrGoldNotFound if no
	// generation has run yet.
	LatestGold(ctx context.Context) ([]QA, error)
}
