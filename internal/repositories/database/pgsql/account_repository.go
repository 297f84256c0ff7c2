package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/models"
	"github.com/freightops/erpshipping/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_code, name, account_type, parent_code, currency_code, purpose, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.AccountCode,
		&account.Name,
		&account.AccountType,
		&account.ParentCode,
		&account.CurrencyCode,
		&account.Purpose,
		&account.IsActive,
		&account.CreatedAt,
		&account.CreatedBy,
		&account.LastUpdatedAt,
		&account.LastUpdatedBy,
	)
	return account, err
}

// SaveAccount inserts a new account. The code is immutable once created.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountCode,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.ParentCode,
		modelAcc.CurrencyCode,
		modelAcc.Purpose,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, modelAcc.AccountCode)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountCode, err)
	}
	return nil
}

// FindAccountByCode retrieves an account by its stable code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_code = $1;`

	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", accountCode, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountByPurpose retrieves the control account configured for a
// purpose. Per-currency purposes match on currency_code; currency-agnostic
// purposes ignore it.
func (r *PgxAccountRepository) FindAccountByPurpose(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error) {
	var (
		query string
		args  []any
	)
	if currencyCode != "" {
		query = `SELECT ` + accountColumns + ` FROM accounts WHERE purpose = $1 AND currency_code = $2;`
		args = []any{string(purpose), currencyCode}
	} else {
		query = `SELECT ` + accountColumns + ` FROM accounts WHERE purpose = $1;`
		args = []any{string(purpose)}
	}

	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by purpose %s: %w", purpose, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}
