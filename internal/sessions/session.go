// Package sessions implements the question-answering session workflow
// for mandate. A session tracks one answering attempt over a document
// page range: the ordered question list, the gold answers captured at
// start time, and the answer cursor. Session state and answer logs are
// flat JSON documents in blob storage, read and written wholesale.
package sessions

import (
	"github.com/google/uuid"

	"github.com/JaimeStill/mandate/internal/obligations"
	"github.com/JaimeStill/mandate/internal/questions"
)

// Session is the persisted state of one question-answering attempt.
// CurrentIndex is the only mutable field; it advances on each accepted
// answer submission. GoldAnswers are captured from the latest gold set
// when the session starts, so later question-generation runs cannot
// alter a running session's grading baseline.
type Session struct {
	ID           uuid.UUID                `json:"session_id"`
	DocumentName string                   `json:"document_name"`
	StartPage    int                      `json:"start_page"`
	EndPage      int                      `json:"end_page"`
	Regulations  []obligations.Obligation `json:"regulations"`
	Questions    []string                 `json:"questions"`
	GoldAnswers  []questions.QA           `json:"gold_answers"`
	CurrentIndex int                      `json:"current_index"`
}

// AnswerRecord is one entry in a session's append-only answer log.
// Records are matched to gold answers by exact question-string equality
// at evaluation time.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StartCommand carries the data needed to start a new session.
type StartCommand struct {
	DocumentName string                   `json:"document_name"`
	StartPage    int                      `json:"start_page"`
	EndPage      int                      `json:"end_page"`
	Regulations  []obligations.Obligation `json:"regulations"`
	Questions    []string                 `json:"questions"`
}

// SubmitCommand carries one answer submission. Index is the position of
// the answered question; the session cursor is set to Index+1 without
// validation against the current cursor, so resubmission and skipping
// are accepted.
type SubmitCommand struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Index    int    `json:"index"`
}
