package workflow

import (
	"log/slog"

	"github.com/JaimeStill/mandate/internal/documents"
	"github.com/JaimeStill/mandate/internal/obligations"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Documents documents.System
	Agent     *obligations.Agent
	Logger    *slog.Logger
}
