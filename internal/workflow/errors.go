package workflow

import "errors"

// Sentinel errors for pipeline operations.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrSourceFailed     = errors.New("failed to source document text")
	ErrExtractFailed    = errors.New("obligation extraction failed")
)
