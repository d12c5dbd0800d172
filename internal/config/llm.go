package config

import (
	"fmt"

	"github.com/JaimeStill/mandate/internal/llm"
)

var extractionEnv = &llm.TaskEnv{
	BaseURL:    "MANDATE_LLM_EXTRACTION_BASE_URL",
	Token:      "MANDATE_LLM_EXTRACTION_TOKEN",
	Model:      "MANDATE_LLM_EXTRACTION_MODEL",
	Capability: "MANDATE_LLM_EXTRACTION_CAPABILITY",
}

var questionEnv = &llm.TaskEnv{
	BaseURL:    "MANDATE_LLM_QUESTION_BASE_URL",
	Token:      "MANDATE_LLM_QUESTION_TOKEN",
	Model:      "MANDATE_LLM_QUESTION_MODEL",
	Capability: "MANDATE_LLM_QUESTION_CAPABILITY",
}

var evaluationEnv = &llm.TaskEnv{
	BaseURL:    "MANDATE_LLM_EVALUATION_BASE_URL",
	Token:      "MANDATE_LLM_EVALUATION_TOKEN",
	Model:      "MANDATE_LLM_EVALUATION_MODEL",
	Capability: "MANDATE_LLM_EVALUATION_CAPABILITY",
}

var retryEnv = &llm.RetryEnv{
	MaxAttempts: "MANDATE_LLM_RETRY_MAX_ATTEMPTS",
	Backoff:     "MANDATE_LLM_RETRY_BACKOFF",
}

// LLMConfig holds one task config per generation agent plus the shared
// retry policy. Each task can target a different endpoint and model;
// extraction typically runs against a larger model than evaluation.
type LLMConfig struct {
	Extraction llm.TaskConfig  `toml:"extraction"`
	Question   llm.TaskConfig  `toml:"question"`
	Evaluation llm.TaskConfig  `toml:"evaluation"`
	Retry      llm.RetryConfig `toml:"retry"`
}

// Finalize applies defaults, environment variable overrides, and
// validation for each task config and the retry policy.
func (c *LLMConfig) Finalize() error {
	if err := c.Extraction.Finalize(extractionEnv); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := c.Question.Finalize(questionEnv); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if err := c.Evaluation.Finalize(evaluationEnv); err != nil {
		return fmt.Errorf("evaluation: %w", err)
	}
	if err := c.Retry.Finalize(retryEnv); err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across task configs.
func (c *LLMConfig) Merge(overlay *LLMConfig) {
	c.Extraction.Merge(&overlay.Extraction)
	c.Question.Merge(&overlay.Question)
	c.Evaluation.Merge(&overlay.Evaluation)
	c.Retry.Merge(&overlay.Retry)
}
