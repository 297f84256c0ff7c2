package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/core/posting"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/freightops/erpshipping/internal/platform/metrics"
	"github.com/google/uuid"
)

// SubmissionService drives the Draft -> Submitted transition. It derives the
// candidate rows through the posting rules, validates balance, and hands the
// whole batch to the ledger repository for the atomic write. Submission is
// the only path that creates ledger rows.
type SubmissionService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	accounts     posting.AccountSource
	invalidator  portssvc.ProfitInvalidator
}

func NewSubmissionService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	accounts posting.AccountSource,
	invalidator portssvc.ProfitInvalidator,
) *SubmissionService {
	return &SubmissionService{
		documentRepo: documentRepo,
		ledgerRepo:   ledgerRepo,
		accounts:     accounts,
		invalidator:  invalidator,
	}
}

func (s *SubmissionService) SubmitDocument(ctx context.Context, ref domain.DocumentRef, actorUserID string) (domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	started := time.Now()

	doc, err := s.submit(ctx, ref, actorUserID)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		if errors.Is(err, apperrors.ErrDocumentNotDraft) ||
			errors.Is(err, apperrors.ErrAlreadyPosted) ||
			errors.Is(err, apperrors.ErrMissingAccount) ||
			errors.Is(err, apperrors.ErrEmptyJournal) ||
			errors.Is(err, apperrors.ErrImbalancedPosting) ||
			errors.Is(err, apperrors.ErrValidation) ||
			errors.Is(err, apperrors.ErrNotFound) {
			outcome = metrics.OutcomeRejected
		} else {
			logger.Error("Document submission failed", slog.String("error", err.Error()), slog.String("document_id", ref.ID), slog.String("kind", string(ref.Kind)))
		}
	}
	metrics.SubmissionsTotal.WithLabelValues(string(ref.Kind), outcome).Inc()
	metrics.SubmissionDuration.WithLabelValues(string(ref.Kind)).Observe(time.Since(started).Seconds())

	return doc, err
}

func (s *SubmissionService) submit(ctx context.Context, ref domain.DocumentRef, actorUserID string) (domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.documentRepo.FindDocument(ctx, ref)
	if err != nil {
		return nil, err
	}

	base := doc.Base()
	switch base.Status {
	case domain.Draft:
		// proceed
	case domain.Submitted:
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrAlreadyPosted, ref.ID)
	default:
		return nil, fmt.Errorf("%w: document %s is %s", apperrors.ErrDocumentNotDraft, ref.ID, base.Status)
	}

	// Cheap precheck; the posting transaction re-verifies under lock.
	count, err := s.ledgerRepo.CountRowsForSource(ctx, ref)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: document %s already has %d ledger rows", apperrors.ErrAlreadyPosted, ref.ID, count)
	}

	rows, err := posting.CandidateRows(ctx, doc, s.accounts)
	if err != nil {
		return nil, err
	}
	if err := posting.ValidateBalanced(rows); err != nil {
		logger.Warn("Submission rejected, batch does not balance", slog.String("document_id", ref.ID), slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	for i := range rows {
		rows[i].RowID = uuid.NewString()
		rows[i].RowSeq = i
		rows[i].SourceKind = ref.Kind
		rows[i].SourceID = ref.ID
		rows[i].CreatedAt = now
		rows[i].CreatedBy = actorUserID
	}

	audit := domain.AuditEntry{
		AuditID:    uuid.NewString(),
		UserID:     actorUserID,
		Action:     domain.ActionSubmit,
		EntityKind: ref.Kind,
		EntityID:   ref.ID,
		Changes:    map[string][]string{"status": {string(domain.Draft), string(domain.Submitted)}},
		Details:    fmt.Sprintf("posted %d ledger rows", len(rows)),
		CreatedAt:  now,
	}

	if err := s.ledgerRepo.PostDocument(ctx, doc, rows, audit); err != nil {
		return nil, err
	}

	// The repository stamps the stored row from the audit entry; the
	// in-memory document is updated only once the transaction has committed.
	base.Status = domain.Submitted
	base.SubmittedBy = &actorUserID
	base.SubmittedAt = &now
	base.LastUpdatedAt = now
	base.LastUpdatedBy = actorUserID

	metrics.LedgerRowsPosted.WithLabelValues(string(ref.Kind)).Add(float64(len(rows)))
	logger.Info("Document submitted",
		slog.String("document_id", ref.ID),
		slog.String("kind", string(ref.Kind)),
		slog.Int("rows", len(rows)),
		slog.String("submitted_by", actorUserID),
	)

	if base.ProjectID != nil && s.invalidator != nil {
		s.invalidator.InvalidateProjectProfit(ctx, *base.ProjectID)
	}

	return doc, nil
}
