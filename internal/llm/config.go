package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Capability selects the invocation shape for a model at configuration
// time. Chat models receive one network call per prompt; completion
// models receive a single batched call for the full prompt set.
type Capability string

// Supported model capabilities.
const (
	CapabilityChat       Capability = "chat"
	CapabilityCompletion Capability = "completion"
)

// PromptPlaceholder marks where the rendered prompt is spliced into a
// completion model's prompt template.
const PromptPlaceholder = "{prompt}"

// TaskConfig holds the endpoint and model parameters for one generation
// task. Capability is declared here rather than inferred from the model
// name, so self-hosted chat-tuned models and proprietary ones share one
// code path.
type TaskConfig struct {
	BaseURL        string  `toml:"base_url"`
	Token          string  `toml:"token"`
	Model          string  `toml:"model"`
	Capability     string  `toml:"capability"`
	PromptTemplate string  `toml:"prompt_template"`
	Options        Options `toml:"options"`
}

// TaskEnv maps task config fields to environment variable names for
// override injection.
type TaskEnv struct {
	BaseURL    string
	Token      string
	Model      string
	Capability string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *TaskConfig) Finalize(env *TaskEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *TaskConfig) Merge(overlay *TaskConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Capability != "" {
		c.Capability = overlay.Capability
	}
	if overlay.PromptTemplate != "" {
		c.PromptTemplate = overlay.PromptTemplate
	}
	c.Options.Merge(overlay.Options)
}

func (c *TaskConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Capability == "" {
		c.Capability = string(CapabilityChat)
	}
}

func (c *TaskConfig) loadEnv(env *TaskEnv) {
	set := func(envVar string, target *string) {
		if envVar != "" {
			if v := os.Getenv(envVar); v != "" {
				*target = v
			}
		}
	}

	set(env.BaseURL, &c.BaseURL)
	set(env.Token, &c.Token)
	set(env.Model, &c.Model)
	set(env.Capability, &c.Capability)
}

func (c *TaskConfig) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model required")
	}

	switch Capability(c.Capability) {
	case CapabilityChat, CapabilityCompletion:
	default:
		return fmt.Errorf("invalid capability: %q", c.Capability)
	}

	if c.PromptTemplate != "" && !strings.Contains(c.PromptTemplate, PromptPlaceholder) {
		return fmt.Errorf("prompt_template missing %s placeholder", PromptPlaceholder)
	}

	if err := c.Options.Finalize(); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	return nil
}

// RetryConfig bounds the regenerate-and-reparse loop that wraps
// structured parsing.
type RetryConfig struct {
	MaxAttempts int    `toml:"max_attempts"`
	Backoff     string `toml:"backoff"`
}

// RetryEnv maps retry config fields to environment variable names.
type RetryEnv struct {
	MaxAttempts string
	Backoff     string
}

// BackoffDuration returns Backoff as a time.Duration.
func (c *RetryConfig) BackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.Backoff)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *RetryConfig) Finalize(env *RetryEnv) error {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.Backoff == "" {
		c.Backoff = "2s"
	}

	if env != nil {
		if env.MaxAttempts != "" {
			if v := os.Getenv(env.MaxAttempts); v != "" {
				if n, err := strconv.Atoi(v); err == nil && n > 0 {
					c.MaxAttempts = n
				}
			}
		}
		if env.Backoff != "" {
			if v := os.Getenv(env.Backoff); v != "" {
				c.Backoff = v
			}
		}
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be positive: %d", c.MaxAttempts)
	}
	if _, err := time.ParseDuration(c.Backoff); err != nil {
		return fmt.Errorf("invalid backoff: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *RetryConfig) Merge(overlay *RetryConfig) {
	if overlay.MaxAttempts != 0 {
		c.MaxAttempts = overlay.MaxAttempts
	}
	if overlay.Backoff != "" {
		c.Backoff = overlay.Backoff
	}
}
