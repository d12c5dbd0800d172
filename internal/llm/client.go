// Package llm provides an OpenAI-compatible generation client with
// capability-based dispatch between chat and raw-completion invocation,
// plus the bounded retry loop that backs structured output parsing.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Generator produces one completion per prompt, order-preserving.
// Implemented by Client; test code substitutes scripted fakes.
type Generator interface {
	Generate(ctx context.Context, prompts []string, opts Options) ([]string, error)
}

// Client talks to an OpenAI-compatible endpoint for a single configured
// task. Transport and authentication failures propagate verbatim; this
// layer never retries.
type Client struct {
	http   *http.Client
	cfg    TaskConfig
	logger *slog.Logger
}

// NewClient creates a Client from a finalized task config.
func NewClient(cfg *TaskConfig, logger *slog.Logger) *Client {
	return &Client{
		http:   &http.Client{},
		cfg:    *cfg,
		logger: logger.With("system", "llm", "model", cfg.Model),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Generate sends prompts to the endpoint and returns one output per
// prompt in input order. Chat-capability models are invoked once per
// prompt as a single user turn; completion-capability models are invoked
// once for the whole batch.
func (c *Client) Generate(ctx context.Context, prompts []string, opts Options) ([]string, error) {
	if len(prompts) == 0 {
		return nil, nil
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("generation options: %w", err)
	}

	start := time.Now()

	var (
		outputs []string
		err     error
	)

	switch Capability(c.cfg.Capability) {
	case CapabilityChat:
		outputs, err = c.generateChat(ctx, prompts, opts)
	case CapabilityCompletion:
		outputs, err = c.generateCompletion(ctx, prompts, opts)
	default:
		return nil, fmt.Errorf("unsupported capability: %q", c.cfg.Capability)
	}

	if err != nil {
		return nil, err
	}

	c.logger.Debug(
		"generation complete",
		"prompts", len(prompts),
		"duration", time.Since(start),
	)

	return outputs, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) generateChat(ctx context.Context, prompts []string, opts Options) ([]string, error) {
	outputs := make([]string, len(prompts))

	for i, prompt := range prompts {
		req := chatRequest{
			Model:       c.cfg.Model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
		}

		var resp chatResponse
		if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
			return nil, err
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("chat completion returned no choices for prompt %d", i)
		}

		outputs[i] = resp.Choices[0].Message.Content
	}

	return outputs, nil
}

type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      []string `json:"prompt"`
	Temperature float64  `json:"temperature"`
	MaxTokens   int      `json:"max_tokens"`
	TopP        float64  `json:"top_p"`
}

type completionResponse struct {
	Choices []struct {
		Index int    `json:"index"`
		Text  string `json:"text"`
	} `json:"choices"`
}

func (c *Client) generateCompletion(ctx context.Context, prompts []string, opts Options) ([]string, error) {
	req := completionRequest{
		Model:       c.cfg.Model,
		Prompt:      c.applyTemplate(prompts),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
	}

	var resp completionResponse
	if err := c.post(ctx, "/completions", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) != len(prompts) {
		return nil, fmt.Errorf(
			"completion returned %d choices for %d prompts",
			len(resp.Choices), len(prompts),
		)
	}

	outputs := make([]string, len(prompts))
	seen := make([]bool, len(prompts))
	for i, choice := range resp.Choices {
		idx := choice.Index
		if idx < 0 || idx >= len(outputs) || seen[idx] {
			idx = i
		}
		outputs[idx] = choice.Text
		seen[idx] = true
	}

	return outputs, nil
}

// applyTemplate wraps each prompt in the configured completion template.
// Completion-only chat-tuned models need their turn markers spliced in
// before raw-completion invocation.
func (c *Client) applyTemplate(prompts []string) []string {
	if c.cfg.PromptTemplate == "" {
		return prompts
	}

	wrapped := make([]string, len(prompts))
	for i, p := range prompts {
		wrapped[i] = strings.ReplaceAll(c.cfg.PromptTemplate, PromptPlaceholder, p)
	}
	return wrapped
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf(
			"%s returned status %d: %s",
			path, resp.StatusCode, strings.TrimSpace(string(detail)),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
