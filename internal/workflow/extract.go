package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// ExtractNode returns a state node that runs the extraction agent over
// the sourced segment. The agent's bounded retry loop owns regeneration
// on malformed output; this node only wires state in and out.
func ExtractNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		segment, err := extractSegment(s)
		if err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		results, err := rt.Agent.Extract(ctx, segment)
		if err != nil {
			return s, fmt.Errorf("extract: %w: %w", ErrExtractFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "extract node complete",
			"obligations", len(results),
		)

		s = s.Set(KeyObligations, results)
		return s, nil
	})
}

func extractSegment(s state.State) (string, error) {
	val, ok := s.Get(KeySegment)
	if !ok {
		return "", fmt.Errorf("%w: missing %s in state", ErrExtractFailed, KeySegment)
	}

	segment, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrExtractFailed, KeySegment)
	}

	return segment, nil
}
