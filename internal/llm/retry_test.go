package llm_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/JaimeStill/mandate/internal/llm"
)

// scriptedGenerator returns canned batches in sequence, or a transport
// error when the script entry is nil.
type scriptedGenerator struct {
	batches [][]string
	errs    []error
	calls   int
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompts []string, opts llm.Options) ([]string, error) {
	i := g.calls
	g.calls++
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	if i < len(g.batches) {
		return g.batches[i], nil
	}
	return g.batches[len(g.batches)-1], nil
}

func parseInts(outputs []string) ([]int, error) {
	results := make([]int, len(outputs))
	for i, output := range outputs {
		n, err := strconv.Atoi(output)
		if err != nil {
			return nil, err
		}
		results[i] = n
	}
	return results, nil
}

func noBackoff() llm.RetryConfig {
	return llm.RetryConfig{MaxAttempts: 3, Backoff: "0s"}
}

func TestGenerateParsedFirstAttempt(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]string{{"1", "2"}}}

	results, err := llm.GenerateParsed(
		context.Background(), gen,
		[]string{"a", "b"},
		llm.DefaultOptions(), noBackoff(),
		parseInts,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("calls: got %d, want 1", gen.calls)
	}
	if len(results) != 2 || results[0] != 1 || results[1] != 2 {
		t.Errorf("results: got %v, want [1 2]", results)
	}
}

func TestGenerateParsedRetriesOnParseFailure(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]string{
		{"not a number"},
		{"42"},
	}}

	results, err := llm.GenerateParsed(
		context.Background(), gen,
		[]string{"a"},
		llm.DefaultOptions(), noBackoff(),
		parseInts,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.calls != 2 {
		t.Errorf("calls: got %d, want 2", gen.calls)
	}
	if results[0] != 42 {
		t.Errorf("result: got %d, want 42", results[0])
	}
}

func TestGenerateParsedExhaustsAttempts(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]string{{"bad"}}}

	_, err := llm.GenerateParsed(
		context.Background(), gen,
		[]string{"a"},
		llm.DefaultOptions(), noBackoff(),
		parseInts,
	)

	if !errors.Is(err, llm.ErrInvalidGeneration) {
		t.Fatalf("error: got %v, want ErrInvalidGeneration", err)
	}
	if gen.calls != 3 {
		t.Errorf("calls: got %d, want 3", gen.calls)
	}
}

func TestGenerateParsedTransportErrorFailsFast(t *testing.T) {
	transportErr := errors.New("connection refused")
	gen := &scriptedGenerator{
		batches: [][]string{nil},
		errs:    []error{transportErr},
	}

	_, err := llm.GenerateParsed(
		context.Background(), gen,
		[]string{"a"},
		llm.DefaultOptions(), noBackoff(),
		parseInts,
	)

	if !errors.Is(err, transportErr) {
		t.Fatalf("error: got %v, want transport error", err)
	}
	if errors.Is(err, llm.ErrInvalidGeneration) {
		t.Error("transport errors should not be wrapped in ErrInvalidGeneration")
	}
	if gen.calls != 1 {
		t.Errorf("calls: got %d, want 1", gen.calls)
	}
}

func TestGenerateParsedContextCancelledDuringBackoff(t *testing.T) {
	gen := &scriptedGenerator{batches: [][]string{{"bad"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := llm.GenerateParsed(
		ctx, gen,
		[]string{"a"},
		llm.DefaultOptions(),
		llm.RetryConfig{MaxAttempts: 3, Backoff: "1h"},
		parseInts,
	)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error: got %v, want context.Canceled", err)
	}
	if gen.calls != 1 {
		t.Errorf("calls: got %d, want 1", gen.calls)
	}
}
