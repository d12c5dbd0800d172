package extraction

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/mandate/internal/workflow"
	"github.com/JaimeStill/mandate/pkg/handlers"
	"github.com/JaimeStill/mandate/pkg/routes"
)

// Handler provides the HTTP endpoint for obligation extraction.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "extraction"),
	}
}

// Routes returns the route group definition for extraction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/extraction",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Extract},
		},
	}
}

// Extract runs the extraction pipeline over a document page range and
// returns the structured obligations found.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var cmd workflow.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if cmd.DocumentName == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Extract(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Obligations)
}
