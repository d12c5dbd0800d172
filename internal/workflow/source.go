package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/mandate/internal/documents"
)

// SourceNode returns a state node that resolves the named document and
// extracts the requested page range as plain text. The segment and
// resolved document id are stored in the state bag for the extract node.
func SourceNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		cmd, err := extractCommand(s)
		if err != nil {
			return s, fmt.Errorf("source: %w", err)
		}

		doc, err := rt.Documents.FindByName(ctx, cmd.DocumentName)
		if err != nil {
			if errors.Is(err, documents.ErrNotFound) {
				return s, fmt.Errorf("source: %w: %s", ErrDocumentNotFound, cmd.DocumentName)
			}
			return s, fmt.Errorf("source: %w: %w", ErrSourceFailed, err)
		}

		segment, err := rt.Documents.Text(ctx, doc.ID, cmd.StartPage, cmd.EndPage)
		if err != nil {
			return s, fmt.Errorf("source: %w: %w", ErrSourceFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "source node complete",
			"document", cmd.DocumentName,
			"start_page", cmd.StartPage,
			"end_page", cmd.EndPage,
			"segment_bytes", len(segment),
		)

		s = s.Set(KeyDocumentID, doc.ID)
		s = s.Set(KeySegment, segment)
		return s, nil
	})
}

func extractCommand(s state.State) (Command, error) {
	val, ok := s.Get(KeyCommand)
	if !ok {
		return Command{}, fmt.Errorf("%w: missing %s in state", ErrSourceFailed, KeyCommand)
	}

	cmd, ok := val.(Command)
	if !ok {
		return Command{}, fmt.Errorf("%w: %s is not Command", ErrSourceFailed, KeyCommand)
	}

	return cmd, nil
}
