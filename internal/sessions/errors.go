package sessions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mandate/internal/llm"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrAnswersNotFound = errors.New("no answers recorded for session")
	ErrInvalidRequest  = errors.New("invalid session request")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAnswersNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrInvalidGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
