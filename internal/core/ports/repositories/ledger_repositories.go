package repositories

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// LedgerReader defines read operations over the general ledger
type LedgerReader interface {
	// ListRows retrieves ledger rows matching the filter, ordered by
	// insertion, with token-based pagination.
	ListRows(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerRow, *string, error)

	// CountRowsForSource returns how many ledger rows reference the given
	// document. Nonzero means the document has already been posted.
	CountRowsForSource(ctx context.Context, ref domain.DocumentRef) (int, error)
}

// SubmissionWriter persists the effects of one document submission
type SubmissionWriter interface {
	// PostDocument commits, as a single transaction: every candidate row,
	// the document's Draft -> Submitted transition (stamped with the audit
	// entry's actor and time), and the audit entry. The document row is
	// locked for the duration; a concurrent submission of the same document
	// observes apperrors.ErrAlreadyPosted. The caller's in-memory document
	// is not touched.
	PostDocument(ctx context.Context, doc domain.Document, rows []domain.LedgerRow, audit domain.AuditEntry) error
}

// LedgerRepositoryFacade combines ledger read and submission write interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	SubmissionWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
