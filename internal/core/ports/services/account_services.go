package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/core/posting"
	"github.com/freightops/erpshipping/internal/dto"
)

// AccountSvcFacade is the account registry surface. It embeds
// posting.AccountSource so the submission flow can hand the service straight
// to the posting rules for account resolution.
type AccountSvcFacade interface {
	posting.AccountSource

	// CreateAccount registers a new chart-of-accounts entry.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its stable code.
	GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// ListAccounts retrieves the full chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
