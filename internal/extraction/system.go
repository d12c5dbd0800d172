// Package extraction exposes the obligation extraction operation.
// It composes the workflow pipeline from domain dependencies and maps
// its results onto the HTTP surface.
package extraction

import (
	"context"

	"github.com/JaimeStill/mandate/internal/workflow"
)

// System defines the public contract for extraction operations.
type System interface {
	Handler() *Handler

	Extract(ctx context.Context, cmd workflow.Command) (*workflow.Result, error)
}
