package sessions_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/mandate/internal/evaluation"
	"github.com/JaimeStill/mandate/internal/llm"
	"github.com/JaimeStill/mandate/internal/questions"
	"github.com/JaimeStill/mandate/internal/sessions"
	"github.com/JaimeStill/mandate/pkg/lifecycle"
	"github.com/JaimeStill/mandate/pkg/storage"
)

// memStore is an in-memory storage.System for session tests.
type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[key]; !ok {
		return storage.ErrNotFound
	}
	delete(m.blobs, key)
	return nil
}

func (m *memStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok, nil
}

// judgementGenerator emits one tagged verdict per prompt.
type judgementGenerator struct{}

func (judgementGenerator) Generate(ctx context.Context, prompts []string, opts llm.Options) ([]string, error) {
	outputs := make([]string, len(prompts))
	for i := range prompts {
		outputs[i] = fmt.Sprintf("<judgement>verdict %d</judgement>", i)
	}
	return outputs, nil
}

func testSystem(t *testing.T, store *memStore) sessions.System {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	retry := llm.RetryConfig{MaxAttempts: 1, Backoff: "0s"}

	gold := questions.New(nil, store, logger)
	evaluator := evaluation.NewAgent(judgementGenerator{}, llm.DefaultOptions(), retry, logger)

	return sessions.New(store, gold, evaluator, logger)
}

func seedGold(t *testing.T, store *memStore, pairs []questions.QA) {
	t.Helper()
	if err := storage.WriteJSON(context.Background(), store, questions.GoldKey, pairs); err != nil {
		t.Fatalf("seed gold: %v", err)
	}
}

func TestStartCapturesGold(t *testing.T) {
	store := newMemStore()
	sys := testSystem(t, store)

	seedGold(t, store, []questions.QA{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	})

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		DocumentName: "policy.pdf",
		StartPage:    1,
		EndPage:      3,
		Questions:    []string{"Q2", "Q1"},
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if session.CurrentIndex != 0 {
		t.Errorf("current_index: got %d, want 0", session.CurrentIndex)
	}
	if len(session.GoldAnswers) != 2 {
		t.Fatalf("gold answers: got %d, want 2", len(session.GoldAnswers))
	}
	// Session question order, not gold set order.
	if session.GoldAnswers[0].Answer != "A2" || session.GoldAnswers[1].Answer != "A1" {
		t.Errorf("gold answers: got %+v", session.GoldAnswers)
	}

	found, err := sys.Find(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.DocumentName != "policy.pdf" || len(found.Questions) != 2 {
		t.Errorf("persisted session: got %+v", found)
	}
}

func TestStartWithoutGoldSet(t *testing.T) {
	sys := testSystem(t, newMemStore())

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		Questions: []string{"Q1"},
	})
	if err != nil {
		t.Fatalf("start should tolerate missing gold set: %v", err)
	}
	if len(session.GoldAnswers) != 0 {
		t.Errorf("gold answers: got %d, want 0", len(session.GoldAnswers))
	}
}

func TestStartNoQuestions(t *testing.T) {
	sys := testSystem(t, newMemStore())

	_, err := sys.Start(context.Background(), sessions.StartCommand{})
	if !errors.Is(err, sessions.ErrInvalidRequest) {
		t.Fatalf("error: got %v, want ErrInvalidRequest", err)
	}
}

func TestSubmitAdvancesCursor(t *testing.T) {
	store := newMemStore()
	sys := testSystem(t, store)

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		Questions: []string{"Q1", "Q2", "Q3"},
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	err = sys.Submit(context.Background(), session.ID, sessions.SubmitCommand{
		Question: "Q3",
		Answer:   "my answer",
		Index:    2,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	found, err := sys.Find(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.CurrentIndex != 3 {
		t.Errorf("current_index: got %d, want 3", found.CurrentIndex)
	}

	records, err := sys.Answers(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("answers failed: %v", err)
	}
	if len(records) != 1 || records[0].Answer != "my answer" {
		t.Errorf("records: got %+v", records)
	}
}

func TestSubmitDuplicateAppends(t *testing.T) {
	store := newMemStore()
	sys := testSystem(t, store)

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		Questions: []string{"Q1"},
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	for _, answer := range []string{"first try", "second try"} {
		err := sys.Submit(context.Background(), session.ID, sessions.SubmitCommand{
			Question: "Q1",
			Answer:   answer,
			Index:    0,
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	records, err := sys.Answers(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("answers failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}
	if records[0].Answer != "first try" || records[1].Answer != "second try" {
		t.Errorf("append order: got %+v", records)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	sys := testSystem(t, newMemStore())
	id := uuid.New()

	err := sys.Submit(context.Background(), id, sessions.SubmitCommand{
		Question: "Q1",
		Answer:   "answered into the void",
		Index:    0,
	})
	if err != nil {
		t.Fatalf("submit should not fail for unknown session: %v", err)
	}

	// Answer is recorded even though the session does not exist.
	records, err := sys.Answers(context.Background(), id)
	if err != nil {
		t.Fatalf("answers failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("records: got %d, want 1", len(records))
	}

	if _, err := sys.Find(context.Background(), id); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("find: got %v, want ErrNotFound", err)
	}
}

func TestFindMissing(t *testing.T) {
	sys := testSystem(t, newMemStore())

	if _, err := sys.Find(context.Background(), uuid.New()); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestEvaluate(t *testing.T) {
	store := newMemStore()
	sys := testSystem(t, store)

	seedGold(t, store, []questions.QA{
		{Question: "Q1", Answer: "A1"},
	})

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		Questions: []string{"Q1"},
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	submissions := []sessions.SubmitCommand{
		{Question: "Q1", Answer: "user answer one", Index: 0},
		{Question: "Q-unlisted", Answer: "off script", Index: 1},
	}
	for _, cmd := range submissions {
		if err := sys.Submit(context.Background(), session.ID, cmd); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	judgments, err := sys.Evaluate(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if len(judgments) != 2 {
		t.Fatalf("judgments: got %d, want 2", len(judgments))
	}
	if judgments[0].GoldAnswer != "A1" {
		t.Errorf("gold answer: got %q, want A1", judgments[0].GoldAnswer)
	}
	if judgments[1].GoldAnswer != "N/A" {
		t.Errorf("unmatched question gold answer: got %q, want N/A", judgments[1].GoldAnswer)
	}
	if judgments[0].YourAnswer != "user answer one" || judgments[1].YourAnswer != "off script" {
		t.Errorf("user answers: got %+v", judgments)
	}
	if judgments[0].Judgment == "" {
		t.Error("judgment verdict should be populated")
	}
}

func TestEvaluateNoAnswers(t *testing.T) {
	store := newMemStore()
	sys := testSystem(t, store)

	session, err := sys.Start(context.Background(), sessions.StartCommand{
		Questions: []string{"Q1"},
	})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if _, err := sys.Evaluate(context.Background(), session.ID); !errors.Is(err, sessions.ErrAnswersNotFound) {
		t.Errorf("error: got %v, want ErrAnswersNotFound", err)
	}
}
