package api

import (
	"github.com/JaimeStill/mandate/internal/documents"
	"github.com/JaimeStill/mandate/internal/evaluation"
	"github.com/JaimeStill/mandate/internal/extraction"
	"github.com/JaimeStill/mandate/internal/obligations"
	"github.com/JaimeStill/mandate/internal/questions"
	"github.com/JaimeStill/mandate/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents  documents.System
	Extraction extraction.System
	Questions  questions.System
	Sessions   sessions.System
}

// NewDomain creates all domain systems from the API runtime. Each
// generation agent gets its own client built from its task config, so
// extraction, question generation, and evaluation can target different
// models independently.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
	)

	extractionAgent := obligations.NewAgent(
		runtime.Generator(&runtime.LLM.Extraction),
		runtime.LLM.Extraction.Options,
		runtime.LLM.Retry,
		runtime.Logger,
	)

	questionAgent := questions.NewAgent(
		runtime.Generator(&runtime.LLM.Question),
		runtime.LLM.Question.Options,
		runtime.LLM.Retry,
		runtime.Logger,
	)

	evaluationAgent := evaluation.NewAgent(
		runtime.Generator(&runtime.LLM.Evaluation),
		runtime.LLM.Evaluation.Options,
		runtime.LLM.Retry,
		runtime.Logger,
	)

	extractionSystem := extraction.New(
		extractionAgent,
		docsSystem,
		runtime.Logger,
	)

	questionsSystem := questions.New(
		questionAgent,
		runtime.Storage,
		runtime.Logger,
	)

	sessionsSystem := sessions.New(
		runtime.Storage,
		questionsSystem,
		evaluationAgent,
		runtime.Logger,
	)

	return &Domain{
		Documents:  docsSystem,
		Extraction: extractionSystem,
		Questions:  questionsSystem,
		Sessions:   sessionsSystem,
	}
}
