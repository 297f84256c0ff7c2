package repositories

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode retrieves an account by its stable code.
	FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// FindAccountByPurpose retrieves the control account configured for a
	// purpose. currencyCode narrows per-currency purposes (receivable,
	// payable) and is empty for currency-agnostic ones.
	FindAccountByPurpose(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount inserts a new account. The code is immutable once created.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
