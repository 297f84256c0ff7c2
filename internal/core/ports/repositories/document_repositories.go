package repositories

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// DocumentReader defines read operations over the financial document variants
type DocumentReader interface {
	// FindDocument retrieves the concrete document variant behind the
	// typed reference.
	FindDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error)

	// ListDocuments retrieves a paginated list of documents of one kind
	// using token-based pagination, newest first.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error)
}

// DocumentWriter defines write operations for draft documents
type DocumentWriter interface {
	// SaveDocument inserts a new draft document of any variant.
	SaveDocument(ctx context.Context, doc domain.Document) error

	// UpdateDraftDocument updates the variant fields of a document that is
	// still in Draft. The repository refuses the update once the document
	// has left Draft.
	UpdateDraftDocument(ctx context.Context, doc domain.Document) error
}

// DocumentRepositoryFacade combines all document repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
