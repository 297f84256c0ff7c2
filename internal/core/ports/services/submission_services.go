package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// SubmissionSvcFacade drives the Draft -> Submitted transition. Submit is the
// only operation in the system that creates ledger rows and audit entries.
type SubmissionSvcFacade interface {
	// SubmitDocument posts the referenced document to the general ledger and
	// returns it in its Submitted state. It fails with one of
	// apperrors.{ErrDocumentNotDraft, ErrAlreadyPosted, ErrMissingAccount,
	// ErrUnsupportedDocumentType, ErrEmptyJournal, ErrImbalancedPosting} or
	// apperrors.ErrNotFound, leaving document, ledger and audit log
	// untouched on any failure.
	SubmitDocument(ctx context.Context, ref domain.DocumentRef, actorUserID string) (domain.Document, error)
}
