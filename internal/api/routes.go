package api

import (
	"net/http"

	"github.com/JaimeStill/mandate/internal/config"
	"github.com/JaimeStill/mandate/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Extraction.Handler().Routes(),
		domain.Questions.Handler().Routes(),
		domain.Sessions.Handler().Routes(),
	)
}
