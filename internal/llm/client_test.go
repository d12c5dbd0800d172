package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/mandate/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateChatOneCallPerPrompt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: got %s, want /chat/completions", r.URL.Path)
		}
		calls++

		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages: got %+v, want single user turn", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "echo: " + req.Messages[0].Content}},
			},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Model:      "test-chat",
		Capability: string(llm.CapabilityChat),
	}
	client := llm.NewClient(cfg, testLogger())

	outputs, err := client.Generate(context.Background(), []string{"one", "two", "three"}, llm.DefaultOptions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
	if len(outputs) != 3 {
		t.Fatalf("outputs: got %d, want 3", len(outputs))
	}
	if outputs[0] != "echo: one" || outputs[2] != "echo: three" {
		t.Errorf("outputs out of order: %v", outputs)
	}
}

func TestGenerateCompletionSingleBatchedCall(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/completions" {
			t.Errorf("path: got %s, want /completions", r.URL.Path)
		}
		calls++

		var req struct {
			Prompt []string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Prompt) != 2 {
			t.Errorf("prompt batch: got %d, want 2", len(req.Prompt))
		}

		// Choices deliberately out of order to exercise index mapping.
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"index": 1, "text": "second"},
				{"index": 0, "text": "first"},
			},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Model:      "test-completion",
		Capability: string(llm.CapabilityCompletion),
	}
	client := llm.NewClient(cfg, testLogger())

	outputs, err := client.Generate(context.Background(), []string{"a", "b"}, llm.DefaultOptions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("calls: got %d, want 1", calls)
	}
	if outputs[0] != "first" || outputs[1] != "second" {
		t.Errorf("outputs: got %v, want [first second]", outputs)
	}
}

func TestGenerateCompletionDuplicateIndices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Both choices claim index 0; the second falls back to its
		// positional slot instead of overwriting the first.
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"index": 0, "text": "first"},
				{"index": 0, "text": "second"},
			},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Model:      "test-completion",
		Capability: string(llm.CapabilityCompletion),
	}
	client := llm.NewClient(cfg, testLogger())

	outputs, err := client.Generate(context.Background(), []string{"a", "b"}, llm.DefaultOptions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if outputs[0] != "first" || outputs[1] != "second" {
		t.Errorf("outputs: got %v, want [first second]", outputs)
	}
}

func TestGenerateCompletionAppliesTemplate(t *testing.T) {
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt []string `json:"prompt"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		received = req.Prompt

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"index": 0, "text": "ok"}},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:        server.URL,
		Model:          "test-completion",
		Capability:     string(llm.CapabilityCompletion),
		PromptTemplate: "<|user|>{prompt}<|assistant|>",
	}
	client := llm.NewClient(cfg, testLogger())

	if _, err := client.Generate(context.Background(), []string{"hello"}, llm.DefaultOptions()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(received) != 1 || received[0] != "<|user|>hello<|assistant|>" {
		t.Errorf("template not applied: %v", received)
	}
}

func TestGenerateCompletionChoiceCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"index": 0, "text": "only one"}},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Model:      "test-completion",
		Capability: string(llm.CapabilityCompletion),
	}
	client := llm.NewClient(cfg, testLogger())

	if _, err := client.Generate(context.Background(), []string{"a", "b"}, llm.DefaultOptions()); err == nil {
		t.Error("expected error on choice count mismatch")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Model:      "test-chat",
		Capability: string(llm.CapabilityChat),
	}
	client := llm.NewClient(cfg, testLogger())

	if _, err := client.Generate(context.Background(), []string{"a"}, llm.DefaultOptions()); err == nil {
		t.Error("expected error on non-200 status")
	}
}

func TestGenerateBearerToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	cfg := &llm.TaskConfig{
		BaseURL:    server.URL,
		Token:      "secret",
		Model:      "test-chat",
		Capability: string(llm.CapabilityChat),
	}
	client := llm.NewClient(cfg, testLogger())

	if _, err := client.Generate(context.Background(), []string{"a"}, llm.DefaultOptions()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if auth != "Bearer secret" {
		t.Errorf("authorization: got %q, want Bearer secret", auth)
	}
}

func TestGenerateEmptyPrompts(t *testing.T) {
	cfg := &llm.TaskConfig{
		BaseURL:    "http://unused",
		Model:      "test-chat",
		Capability: string(llm.CapabilityChat),
	}
	client := llm.NewClient(cfg, testLogger())

	outputs, err := client.Generate(context.Background(), nil, llm.DefaultOptions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if outputs != nil {
		t.Errorf("outputs: got %v, want nil", outputs)
	}
}
