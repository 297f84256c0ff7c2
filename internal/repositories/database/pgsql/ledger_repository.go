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
	"github.com/freightops/erpshipping/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerRowColumns = `row_id, account_code, transaction_date, project_id, debit_base, credit_base, debit_foreign, credit_foreign, currency_code, source_kind, source_id, row_seq, created_at, created_by`

// row_ordinal is database-assigned, so it is read but never inserted.
const ledgerRowSelectColumns = ledgerRowColumns + `, row_ordinal`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the append-only ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

func scanLedgerRow(row pgx.Row) (models.LedgerRow, error) {
	var m models.LedgerRow
	err := row.Scan(
		&m.RowID,
		&m.AccountCode,
		&m.TransactionDate,
		&m.ProjectID,
		&m.DebitBase,
		&m.CreditBase,
		&m.DebitForeign,
		&m.CreditForeign,
		&m.CurrencyCode,
		&m.SourceKind,
		&m.SourceID,
		&m.RowSeq,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.RowOrdinal,
	)
	return m, err
}

// buildListRowsQuery assembles the filtered page query. Ordering is by the
// database-assigned row_ordinal: every row of one submission shares a single
// created_at, so only the ordinal reflects insertion order within a batch
// (the rows are inserted in row_seq order, so the ordinal follows it).
func buildListRowsQuery(filter domain.LedgerFilter, limit int, nextToken *string) (string, []any, error) {
	query := `SELECT ` + ledgerRowSelectColumns + ` FROM ledger_rows WHERE 1=1`
	args := []any{}

	addArg := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.ProjectID != nil {
		addArg(` AND project_id = $%d`, *filter.ProjectID)
	}
	if filter.AccountCode != nil {
		addArg(` AND account_code = $%d`, *filter.AccountCode)
	}
	if filter.DateFrom != nil {
		addArg(` AND transaction_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg(` AND transaction_date <= $%d`, *filter.DateTo)
	}

	if nextToken != nil && *nextToken != "" {
		afterOrdinal, err := pagination.DecodeOrdinalToken(*nextToken)
		if err != nil {
			return "", nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		addArg(` AND row_ordinal > $%d`, afterOrdinal)
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY row_ordinal LIMIT $%d;`, len(args))
	return query, args, nil
}

// ListRows retrieves ledger rows matching the filter, in insertion order,
// using a row_ordinal pagination token.
func (r *PgxLedgerRepository) ListRows(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	query, args, err := buildListRowsQuery(filter, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger rows: %w", err)
	}
	defer rows.Close()

	modelRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerRow, error) {
		return scanLedgerRow(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan ledger rows: %w", err)
	}

	hasMore := len(modelRows) > limit
	if hasMore {
		modelRows = modelRows[:limit]
	}

	var token *string
	if hasMore && len(modelRows) > 0 {
		t := pagination.EncodeOrdinalToken(modelRows[len(modelRows)-1].RowOrdinal)
		token = &t
	}

	return mapping.ToDomainLedgerRowSlice(modelRows), token, nil
}

// CountRowsForSource returns how many ledger rows reference the document.
func (r *PgxLedgerRepository) CountRowsForSource(ctx context.Context, ref domain.DocumentRef) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_rows WHERE source_kind = $1 AND source_id = $2;`,
		string(ref.Kind), ref.ID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ledger rows for %s/%s: %w", ref.Kind, ref.ID, err)
	}
	return count, nil
}

// PostDocument commits the submission atomically: it locks the document row,
// re-verifies it is still Draft, inserts the batch of ledger rows and the
// audit entry, and flips the document to Submitted. The unique index on
// (source_kind, source_id, row_seq) backstops the lock; a concurrent loser
// observes ErrAlreadyPosted either way.
func (r *PgxLedgerRepository) PostDocument(ctx context.Context, doc domain.Document, rows []domain.LedgerRow, audit domain.AuditEntry) error {
	ref := doc.Ref()
	table, err := documentTable(ref.Kind)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the document row for the duration of the posting.
	var status models.DocumentStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM `+table+` WHERE document_id = $1 FOR UPDATE;`,
		ref.ID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock document %s: %w", ref.ID, err)
	}
	switch status {
	case models.Draft:
		// proceed
	case models.Submitted:
		return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyPosted, ref.ID)
	default:
		return fmt.Errorf("%w: document %s is %s", apperrors.ErrDocumentNotDraft, ref.ID, status)
	}

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO ledger_rows (` + ledgerRowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, row := range rows {
		m := mapping.ToModelLedgerRow(row)
		batch.Queue(insertQuery,
			m.RowID,
			m.AccountCode,
			m.TransactionDate,
			m.ProjectID,
			m.DebitBase,
			m.CreditBase,
			m.DebitForeign,
			m.CreditForeign,
			m.CurrencyCode,
			m.SourceKind,
			m.SourceID,
			m.RowSeq,
			m.CreatedAt,
			m.CreatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := results.Exec(); err != nil {
			results.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (source_kind, source_id, row_seq)
				return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyPosted, ref.ID)
			}
			return fmt.Errorf("failed to insert ledger row for %s: %w", ref.ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush ledger row batch for %s: %w", ref.ID, err)
	}

	modelAudit := mapping.ToModelAuditEntry(audit)
	_, err = tx.Exec(ctx, `
		INSERT INTO audit_trail (audit_id, user_id, action, entity_kind, entity_id, changes, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		modelAudit.AuditID,
		modelAudit.UserID,
		modelAudit.Action,
		modelAudit.EntityKind,
		modelAudit.EntityID,
		modelAudit.Changes,
		modelAudit.Details,
		modelAudit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry for %s: %w", ref.ID, err)
	}

	// The submission stamp comes from the audit entry, so the caller's
	// in-memory document stays untouched until the transaction commits.
	tag, err := tx.Exec(ctx, `
		UPDATE `+table+`
		SET status = $2, submitted_by = $3, submitted_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $1 AND status = 'DRAFT';
	`,
		ref.ID,
		string(domain.Submitted),
		audit.UserID,
		audit.CreatedAt,
		audit.CreatedAt,
		audit.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark document %s submitted: %w", ref.ID, err)
	}
	if tag.RowsAffected() == 0 {
		// Cannot happen while we hold the row lock, but fail loudly.
		return fmt.Errorf("%w: document %s", apperrors.ErrAlreadyPosted, ref.ID)
	}

	return r.Commit(ctx, tx)
}
