// Package workflow implements the obligation extraction pipeline for
// mandate. It provides the 2-node state graph (source → extract) that
// resolves a document, pulls page-range text, and runs the extraction
// agent over the resulting segment.
package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/mandate/internal/obligations"
)

// State bag keys shared across pipeline nodes.
const (
	KeyCommand     = "command"
	KeyDocumentID  = "document_id"
	KeySegment     = "segment"
	KeyObligations = "obligations"
)

// Command identifies the document and page range to extract from.
// Documents are addressed by registered filename.
type Command struct {
	DocumentName string `json:"document_name"`
	StartPage    int    `json:"start_page"`
	EndPage      int    `json:"end_page"`
}

// Result is the final output from an extraction pipeline execution.
type Result struct {
	DocumentID   uuid.UUID                `json:"document_id"`
	DocumentName string                   `json:"document_name"`
	StartPage    int                      `json:"start_page"`
	EndPage      int                      `json:"end_page"`
	Obligations  []obligations.Obligation `json:"obligations"`
	CompletedAt  time.Time                `json:"completed_at"`
}
