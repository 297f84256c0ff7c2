package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for derived reporting data.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetProjectProfitData aggregates the project's ledger rows in base currency:
// revenue is credit_base over Income accounts, expenses is debit_base over
// Expense accounts. Other account types contribute nothing.
func (r *PgxReportingRepository) GetProjectProfitData(ctx context.Context, projectID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(lr.credit_base) FILTER (WHERE a.account_type = 'INCOME'), 0) AS revenue,
			COALESCE(SUM(lr.debit_base) FILTER (WHERE a.account_type = 'EXPENSE'), 0) AS expenses
		FROM ledger_rows lr
		JOIN accounts a ON a.account_code = lr.account_code
		WHERE lr.project_id = $1;
	`
	var revenue, expenses decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&revenue, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to aggregate profit for project %s: %w", projectID, err)
	}
	return revenue, expenses, nil
}
