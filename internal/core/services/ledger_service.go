package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/middleware"
)

const defaultLedgerListLimit = 50

// LedgerService is the read-only query surface over the general ledger.
type LedgerService struct {
	ledgerRepo portsrepo.LedgerReader
}

func NewLedgerService(repo portsrepo.LedgerReader) *LedgerService {
	return &LedgerService{ledgerRepo: repo}
}

func (s *LedgerService) ListLedgerRows(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = defaultLedgerListLimit
	}

	rows, next, err := s.ledgerRepo.ListRows(ctx, filter, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list ledger rows from repository", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to list ledger rows: %w", err)
	}
	if rows == nil {
		rows = []domain.LedgerRow{}
	}
	return rows, next, nil
}
