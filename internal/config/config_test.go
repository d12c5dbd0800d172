package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/mandate/internal/config"
	"github.com/JaimeStill/mandate/internal/llm"
)

func TestServerConfigFinalizeDefaults(t *testing.T) {
	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != time.Minute {
		t.Errorf("read timeout: got %v, want 1m", cfg.ReadTimeoutDuration())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestServerConfigFinalizeEnv(t *testing.T) {
	t.Setenv("MANDATE_SERVER_HOST", "127.0.0.1")
	t.Setenv("MANDATE_SERVER_PORT", "9090")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("addr: got %s, want 127.0.0.1:9090", cfg.Addr())
	}
}

func TestServerConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{"negative port", config.ServerConfig{Port: -1}},
		{"port too large", config.ServerConfig{Port: 70000}},
		{"bad read timeout", config.ServerConfig{ReadTimeout: "never"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("expected finalize error, got nil")
			}
		})
	}
}

func TestServerConfigMerge(t *testing.T) {
	base := config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "1m"}
	overlay := config.ServerConfig{Port: 9999}

	base.Merge(&overlay)

	if base.Port != 9999 {
		t.Errorf("port: got %d, want 9999", base.Port)
	}
	if base.Host != "0.0.0.0" || base.ReadTimeout != "1m" {
		t.Errorf("merge altered unset fields: %+v", base)
	}
}

func TestAPIConfigMaxUploadSize(t *testing.T) {
	cfg := config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("base_path: got %s, want /api", cfg.BasePath)
	}
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("max upload: got %d, want 50MB", got)
	}

	cfg.MaxUploadSize = "garbage"
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("unparseable size should fall back to 50MB: got %d", got)
	}
}

func TestLLMConfigFinalize(t *testing.T) {
	cfg := config.LLMConfig{
		Extraction: llm.TaskConfig{Model: "extract-model"},
		Question:   llm.TaskConfig{Model: "question-model"},
		Evaluation: llm.TaskConfig{Model: "eval-model", Capability: "completion"},
	}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Extraction.Capability != string(llm.CapabilityChat) {
		t.Errorf("extraction capability should default to chat: %q", cfg.Extraction.Capability)
	}
	if cfg.Evaluation.Capability != string(llm.CapabilityCompletion) {
		t.Errorf("evaluation capability: got %q", cfg.Evaluation.Capability)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry max_attempts: got %d, want 3", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.BackoffDuration() != 2*time.Second {
		t.Errorf("retry backoff: got %v, want 2s", cfg.Retry.BackoffDuration())
	}
}

func TestLLMConfigFinalizeMissingModel(t *testing.T) {
	cfg := config.LLMConfig{
		Question:   llm.TaskConfig{Model: "question-model"},
		Evaluation: llm.TaskConfig{Model: "eval-model"},
	}

	if err := cfg.Finalize(); err == nil {
		t.Error("expected error for missing extraction model")
	}
}

func TestLLMConfigMerge(t *testing.T) {
	base := config.LLMConfig{
		Extraction: llm.TaskConfig{Model: "base-model", Token: "base-token"},
	}
	overlay := config.LLMConfig{
		Extraction: llm.TaskConfig{Model: "overlay-model"},
	}

	base.Merge(&overlay)

	if base.Extraction.Model != "overlay-model" {
		t.Errorf("model: got %q, want overlay-model", base.Extraction.Model)
	}
	if base.Extraction.Token != "base-token" {
		t.Errorf("merge should keep base token: %q", base.Extraction.Token)
	}
}
