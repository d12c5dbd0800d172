package documents

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(ctx context.Context) ([]Document, error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByName(ctx context.Context, filename string) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Text extracts the plain text of an inclusive 1-based page range,
	// joined page by page with newlines. Acts as the text-source
	// collaborator for the extraction pipeline.
	Text(ctx context.Context, id uuid.UUID, startPage, endPage int) (string, error)
}
