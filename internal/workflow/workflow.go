package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/mandate/internal/obligations"
)

// Execute runs the extraction pipeline for a single document page range.
// It builds the state graph (source → extract), executes it, and
// extracts the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, cmd Command) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyCommand, cmd)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState, cmd)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("mandate-extract")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("source", SourceNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("extract", ExtractNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("source", "extract", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("source"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("extract"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State, cmd Command) (*Result, error) {
	val, ok := s.Get(KeyObligations)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyObligations)
	}

	results, ok := val.([]obligations.Obligation)
	if !ok {
		return nil, fmt.Errorf("%s is not []obligations.Obligation", KeyObligations)
	}

	docIDVal, ok := s.Get(KeyDocumentID)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyDocumentID)
	}

	documentID, ok := docIDVal.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("%s is not uuid.UUID", KeyDocumentID)
	}

	return &Result{
		DocumentID:   documentID,
		DocumentName: cmd.DocumentName,
		StartPage:    cmd.StartPage,
		EndPage:      cmd.EndPage,
		Obligations:  results,
		CompletedAt:  time.Now(),
	}, nil
}
