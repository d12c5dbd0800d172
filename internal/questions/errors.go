package questions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mandate/internal/llm"
)

// Domain errors for question generation operations.
var (
	ErrNoRegulations = errors.New("no regulations provided")
	ErrGoldNotFound  = errors.New("gold answers not found")
)

// MapHTTPStatus maps question domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoRegulations) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrGoldNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, llm.ErrInvalidGeneration) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
