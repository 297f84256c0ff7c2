package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// LedgerSvcFacade is the read-only ledger query surface.
type LedgerSvcFacade interface {
	// ListLedgerRows retrieves rows matching the filter, ordered by
	// insertion, with token-based pagination.
	ListLedgerRows(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerRow, *string, error)
}
