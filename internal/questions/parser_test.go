package questions_test

import (
	"testing"

	"github.com/JaimeStill/mandate/internal/questions"
)

func TestParseTagged(t *testing.T) {
	outputs := []string{
		"<question>What is the notice period?</question>\n<answer>Two weeks.</answer>",
		"Some preamble.\n<question>Who approves leave?</question><answer>The supervisor.</answer> Trailing text.",
	}

	got, err := questions.ParseTagged(outputs)
	if err != nil {
		t.Fatalf("ParseTagged failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("pairs: got %d, want 2", len(got))
	}
	if got[0].Question != "What is the notice period?" || got[0].Answer != "Two weeks." {
		t.Errorf("first pair: got %+v", got[0])
	}
	if got[1].Question != "Who approves leave?" || got[1].Answer != "The supervisor." {
		t.Errorf("second pair: got %+v", got[1])
	}
}

func TestParseTaggedMultiline(t *testing.T) {
	outputs := []string{
		"<question>\nWhat must employees do\nbefore resigning?\n</question>\n<answer>\nGive notice.\n</answer>",
	}

	got, err := questions.ParseTagged(outputs)
	if err != nil {
		t.Fatalf("ParseTagged failed: %v", err)
	}

	if got[0].Question != "What must employees do\nbefore resigning?" {
		t.Errorf("question: got %q", got[0].Question)
	}
	if got[0].Answer != "Give notice." {
		t.Errorf("answer: got %q", got[0].Answer)
	}
}

func TestParseTaggedMissingSpans(t *testing.T) {
	tests := []struct {
		name    string
		outputs []string
	}{
		{
			name:    "missing question",
			outputs: []string{"<answer>orphaned</answer>"},
		},
		{
			name:    "missing answer",
			outputs: []string{"<question>orphaned</question>"},
		},
		{
			name: "one bad item fails the batch",
			outputs: []string{
				"<question>ok</question><answer>ok</answer>",
				"no tags here",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := questions.ParseTagged(tt.outputs); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseTaggedEmptyBatch(t *testing.T) {
	got, err := questions.ParseTagged(nil)
	if err != nil {
		t.Fatalf("ParseTagged failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("pairs: got %d, want 0", len(got))
	}
}
