package extraction

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mandate/internal/documents"
	"github.com/JaimeStill/mandate/internal/llm"
	"github.com/JaimeStill/mandate/internal/workflow"
)

// ErrInvalidRequest indicates a malformed extraction request body.
var ErrInvalidRequest = errors.New("invalid extraction request")

// MapHTTPStatus maps extraction errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, workflow.ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, documents.ErrInvalidPageRange) {
		return http.StatusBadRequest
	}
	if errors.Is(err, llm.ErrInvalidGeneration) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
