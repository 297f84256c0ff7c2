package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/models"
	"github.com/freightops/erpshipping/internal/utils/mapping"
	"github.com/freightops/erpshipping/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentTable maps a document kind to its table. Each variant has its own
// table; the shared workflow columns are repeated per table.
func documentTable(kind domain.DocumentKind) (string, error) {
	switch kind {
	case domain.KindSalesInvoice:
		return "sales_invoices", nil
	case domain.KindPurchaseInvoice:
		return "purchase_invoices", nil
	case domain.KindPaymentEntry:
		return "payment_entries", nil
	case domain.KindJournalEntry:
		return "journal_entries", nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedDocumentType, kind)
	}
}

const documentCoreColumns = `document_id, status, project_id, notes, submitted_by, submitted_at, created_at, created_by, last_updated_at, last_updated_by`

const (
	salesInvoiceColumns    = documentCoreColumns + `, customer_id, invoice_date, due_date, currency_code, exchange_rate, total_amount`
	purchaseInvoiceColumns = documentCoreColumns + `, agent_id, invoice_date, currency_code, exchange_rate, total_amount`
	paymentEntryColumns    = documentCoreColumns + `, payment_type, party_type, customer_id, agent_id, payment_date, currency_code, exchange_rate, amount, source_account_code, target_account_code`
	journalEntryColumns    = documentCoreColumns + `, entry_date`
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for draft financial documents.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func scanDocumentCore(row pgx.Row, core *models.DocumentCore, rest ...any) error {
	dest := []any{
		&core.DocumentID,
		&core.Status,
		&core.ProjectID,
		&core.Notes,
		&core.SubmittedBy,
		&core.SubmittedAt,
		&core.CreatedAt,
		&core.CreatedBy,
		&core.LastUpdatedAt,
		&core.LastUpdatedBy,
	}
	dest = append(dest, rest...)
	return row.Scan(dest...)
}

// FindDocument retrieves the concrete document variant behind the typed reference.
func (r *PgxDocumentRepository) FindDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error) {
	switch ref.Kind {
	case domain.KindSalesInvoice:
		return r.findSalesInvoice(ctx, ref.ID)
	case domain.KindPurchaseInvoice:
		return r.findPurchaseInvoice(ctx, ref.ID)
	case domain.KindPaymentEntry:
		return r.findPaymentEntry(ctx, ref.ID)
	case domain.KindJournalEntry:
		return r.findJournalEntry(ctx, ref.ID)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedDocumentType, ref.Kind)
	}
}

func (r *PgxDocumentRepository) findSalesInvoice(ctx context.Context, documentID string) (*domain.SalesInvoice, error) {
	query := `
		SELECT ` + salesInvoiceColumns + `
		FROM sales_invoices
		WHERE document_id = $1;
	`
	var m models.SalesInvoice
	err := scanDocumentCore(r.Pool.QueryRow(ctx, query, documentID), &m.DocumentCore,
		&m.CustomerID, &m.InvoiceDate, &m.DueDate, &m.CurrencyCode, &m.ExchangeRate, &m.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sales invoice %s: %w", documentID, err)
	}

	inv := mapping.ToDomainSalesInvoice(m)
	return &inv, nil
}

func (r *PgxDocumentRepository) findPurchaseInvoice(ctx context.Context, documentID string) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + `
		FROM purchase_invoices
		WHERE document_id = $1;
	`
	var m models.PurchaseInvoice
	err := scanDocumentCore(r.Pool.QueryRow(ctx, query, documentID), &m.DocumentCore,
		&m.AgentID, &m.InvoiceDate, &m.CurrencyCode, &m.ExchangeRate, &m.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase invoice %s: %w", documentID, err)
	}

	inv := mapping.ToDomainPurchaseInvoice(m)
	return &inv, nil
}

func (r *PgxDocumentRepository) findPaymentEntry(ctx context.Context, documentID string) (*domain.PaymentEntry, error) {
	query := `
		SELECT ` + paymentEntryColumns + `
		FROM payment_entries
		WHERE document_id = $1;
	`
	var m models.PaymentEntry
	err := scanDocumentCore(r.Pool.QueryRow(ctx, query, documentID), &m.DocumentCore,
		&m.PaymentType, &m.PartyType, &m.CustomerID, &m.AgentID, &m.PaymentDate,
		&m.CurrencyCode, &m.ExchangeRate, &m.Amount, &m.SourceAccountCode, &m.TargetAccountCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment entry %s: %w", documentID, err)
	}

	pe := mapping.ToDomainPaymentEntry(m)
	return &pe, nil
}

func (r *PgxDocumentRepository) findJournalEntry(ctx context.Context, documentID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE document_id = $1;
	`
	var m models.JournalEntry
	err := scanDocumentCore(r.Pool.QueryRow(ctx, query, documentID), &m.DocumentCore, &m.EntryDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", documentID, err)
	}

	lines, err := r.findJournalLines(ctx, documentID)
	if err != nil {
		return nil, err
	}

	je := mapping.ToDomainJournalEntry(m, lines)
	return &je, nil
}

func (r *PgxDocumentRepository) findJournalLines(ctx context.Context, journalID string) ([]models.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, line_seq, account_code, currency_code, exchange_rate, debit_foreign, credit_foreign
		FROM journal_entry_lines
		WHERE journal_id = $1
		ORDER BY line_seq;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines for %s: %w", journalID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, scanJournalLine)
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal lines for %s: %w", journalID, err)
	}
	return lines, nil
}

func scanJournalLine(row pgx.CollectableRow) (models.JournalLine, error) {
	var line models.JournalLine
	err := row.Scan(
		&line.LineID,
		&line.JournalID,
		&line.LineSeq,
		&line.AccountCode,
		&line.CurrencyCode,
		&line.ExchangeRate,
		&line.DebitForeign,
		&line.CreditForeign,
	)
	return line, err
}

// documentPageScanner returns the full variant column list for one kind and a
// collector that scans one page row into the concrete document. Journal lines
// live in their own table and are attached afterwards.
func documentPageScanner(kind domain.DocumentKind) (string, func(pgx.CollectableRow) (domain.Document, error), error) {
	switch kind {
	case domain.KindSalesInvoice:
		return salesInvoiceColumns, func(row pgx.CollectableRow) (domain.Document, error) {
			var m models.SalesInvoice
			if err := scanDocumentCore(row, &m.DocumentCore,
				&m.CustomerID, &m.InvoiceDate, &m.DueDate, &m.CurrencyCode, &m.ExchangeRate, &m.TotalAmount); err != nil {
				return nil, err
			}
			inv := mapping.ToDomainSalesInvoice(m)
			return &inv, nil
		}, nil
	case domain.KindPurchaseInvoice:
		return purchaseInvoiceColumns, func(row pgx.CollectableRow) (domain.Document, error) {
			var m models.PurchaseInvoice
			if err := scanDocumentCore(row, &m.DocumentCore,
				&m.AgentID, &m.InvoiceDate, &m.CurrencyCode, &m.ExchangeRate, &m.TotalAmount); err != nil {
				return nil, err
			}
			inv := mapping.ToDomainPurchaseInvoice(m)
			return &inv, nil
		}, nil
	case domain.KindPaymentEntry:
		return paymentEntryColumns, func(row pgx.CollectableRow) (domain.Document, error) {
			var m models.PaymentEntry
			if err := scanDocumentCore(row, &m.DocumentCore,
				&m.PaymentType, &m.PartyType, &m.CustomerID, &m.AgentID, &m.PaymentDate,
				&m.CurrencyCode, &m.ExchangeRate, &m.Amount, &m.SourceAccountCode, &m.TargetAccountCode); err != nil {
				return nil, err
			}
			pe := mapping.ToDomainPaymentEntry(m)
			return &pe, nil
		}, nil
	case domain.KindJournalEntry:
		return journalEntryColumns, func(row pgx.CollectableRow) (domain.Document, error) {
			var m models.JournalEntry
			if err := scanDocumentCore(row, &m.DocumentCore, &m.EntryDate); err != nil {
				return nil, err
			}
			je := mapping.ToDomainJournalEntry(m, nil)
			return &je, nil
		}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedDocumentType, kind)
	}
}

// ListDocuments retrieves a paginated list of documents of one kind, newest
// first, using a (created_at, document_id) token. The page is read with a
// single query over the full variant columns; journal pages take one more
// query for their line sets.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error) {
	table, err := documentTable(kind)
	if err != nil {
		return nil, nil, err
	}
	cols, collect, err := documentPageScanner(kind)
	if err != nil {
		return nil, nil, err
	}

	var (
		afterCreatedAt time.Time
		afterID        string
		hasToken       bool
	)
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		afterCreatedAt, err = time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		afterID = fields[1]
		hasToken = true
	}

	query := `SELECT ` + cols + ` FROM ` + table
	args := []any{}
	if hasToken {
		query += ` WHERE (created_at, document_id) < ($1, $2)`
		args = append(args, afterCreatedAt, afterID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, document_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	docs, err := pgx.CollectRows(rows, collect)
	rows.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan %s page: %w", table, err)
	}

	hasMore := len(docs) > limit
	if hasMore {
		docs = docs[:limit]
	}

	if kind == domain.KindJournalEntry {
		if err := r.attachJournalLines(ctx, docs); err != nil {
			return nil, nil, err
		}
	}

	var token *string
	if hasMore && len(docs) > 0 {
		last := docs[len(docs)-1].Base()
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.DocumentID)
		token = &t
	}

	return docs, token, nil
}

// attachJournalLines loads the line sets for a page of journal entries with
// one query.
func (r *PgxDocumentRepository) attachJournalLines(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.Base().DocumentID
	}

	query := `
		SELECT line_id, journal_id, line_seq, account_code, currency_code, exchange_rate, debit_foreign, credit_foreign
		FROM journal_entry_lines
		WHERE journal_id = ANY($1)
		ORDER BY journal_id, line_seq;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, scanJournalLine)
	if err != nil {
		return fmt.Errorf("failed to scan journal lines: %w", err)
	}

	byJournal := make(map[string][]models.JournalLine, len(docs))
	for _, line := range lines {
		byJournal[line.JournalID] = append(byJournal[line.JournalID], line)
	}
	for _, d := range docs {
		je := d.(*domain.JournalEntry)
		je.Lines = mapping.ToDomainJournalLines(byJournal[je.DocumentID])
	}
	return nil
}

// SaveDocument inserts a new draft document of any variant.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	switch d := doc.(type) {
	case *domain.SalesInvoice:
		return r.saveSalesInvoice(ctx, d)
	case *domain.PurchaseInvoice:
		return r.savePurchaseInvoice(ctx, d)
	case *domain.PaymentEntry:
		return r.savePaymentEntry(ctx, d)
	case *domain.JournalEntry:
		return r.saveJournalEntry(ctx, d)
	default:
		return fmt.Errorf("%w: %T", apperrors.ErrUnsupportedDocumentType, doc)
	}
}

func coreArgs(core models.DocumentCore) []any {
	return []any{
		core.DocumentID,
		core.Status,
		core.ProjectID,
		core.Notes,
		core.SubmittedBy,
		core.SubmittedAt,
		core.CreatedAt,
		core.CreatedBy,
		core.LastUpdatedAt,
		core.LastUpdatedBy,
	}
}

func (r *PgxDocumentRepository) saveSalesInvoice(ctx context.Context, d *domain.SalesInvoice) error {
	m := mapping.ToModelSalesInvoice(*d)
	query := `
		INSERT INTO sales_invoices (` + documentCoreColumns + `, customer_id, invoice_date, due_date, currency_code, exchange_rate, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	args := append(coreArgs(m.DocumentCore), m.CustomerID, m.InvoiceDate, m.DueDate, m.CurrencyCode, m.ExchangeRate, m.TotalAmount)
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert sales invoice %s: %w", m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) savePurchaseInvoice(ctx context.Context, d *domain.PurchaseInvoice) error {
	m := mapping.ToModelPurchaseInvoice(*d)
	query := `
		INSERT INTO purchase_invoices (` + documentCoreColumns + `, agent_id, invoice_date, currency_code, exchange_rate, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	args := append(coreArgs(m.DocumentCore), m.AgentID, m.InvoiceDate, m.CurrencyCode, m.ExchangeRate, m.TotalAmount)
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert purchase invoice %s: %w", m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) savePaymentEntry(ctx context.Context, d *domain.PaymentEntry) error {
	m := mapping.ToModelPaymentEntry(*d)
	query := `
		INSERT INTO payment_entries (` + documentCoreColumns + `, payment_type, party_type, customer_id, agent_id, payment_date, currency_code, exchange_rate, amount, source_account_code, target_account_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	args := append(coreArgs(m.DocumentCore),
		m.PaymentType, m.PartyType, m.CustomerID, m.AgentID, m.PaymentDate,
		m.CurrencyCode, m.ExchangeRate, m.Amount, m.SourceAccountCode, m.TargetAccountCode)
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert payment entry %s: %w", m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) saveJournalEntry(ctx context.Context, d *domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(*d)
	lines := mapping.ToModelJournalLines(d.DocumentID, d.Lines)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO journal_entries (` + documentCoreColumns + `, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	args := append(coreArgs(m.DocumentCore), m.EntryDate)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", m.DocumentID, err)
	}

	if err := insertJournalLines(ctx, tx, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertJournalLines(ctx context.Context, tx pgx.Tx, lines []models.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_entry_lines (line_id, journal_id, line_seq, account_code, currency_code, exchange_rate, debit_foreign, credit_foreign)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range lines {
		batch.Queue(query,
			line.LineID,
			line.JournalID,
			line.LineSeq,
			line.AccountCode,
			line.CurrencyCode,
			line.ExchangeRate,
			line.DebitForeign,
			line.CreditForeign,
		)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	return nil
}

// UpdateDraftDocument updates a document's variant fields while it is still
// in Draft. The WHERE guard refuses the update once the document has left
// Draft, so a concurrently submitted document cannot be edited.
func (r *PgxDocumentRepository) UpdateDraftDocument(ctx context.Context, doc domain.Document) error {
	switch d := doc.(type) {
	case *domain.SalesInvoice:
		m := mapping.ToModelSalesInvoice(*d)
		query := `
			UPDATE sales_invoices
			SET project_id = $2, notes = $3, customer_id = $4, invoice_date = $5, due_date = $6,
			    currency_code = $7, exchange_rate = $8, total_amount = $9,
			    last_updated_at = $10, last_updated_by = $11
			WHERE document_id = $1 AND status = 'DRAFT';
		`
		tag, err := r.Pool.Exec(ctx, query, m.DocumentID, m.ProjectID, m.Notes, m.CustomerID,
			m.InvoiceDate, m.DueDate, m.CurrencyCode, m.ExchangeRate, m.TotalAmount,
			m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to update sales invoice %s: %w", m.DocumentID, err)
		}
		return r.checkDraftUpdate(ctx, doc.Ref(), tag.RowsAffected())

	case *domain.PurchaseInvoice:
		m := mapping.ToModelPurchaseInvoice(*d)
		query := `
			UPDATE purchase_invoices
			SET project_id = $2, notes = $3, agent_id = $4, invoice_date = $5,
			    currency_code = $6, exchange_rate = $7, total_amount = $8,
			    last_updated_at = $9, last_updated_by = $10
			WHERE document_id = $1 AND status = 'DRAFT';
		`
		tag, err := r.Pool.Exec(ctx, query, m.DocumentID, m.ProjectID, m.Notes, m.AgentID,
			m.InvoiceDate, m.CurrencyCode, m.ExchangeRate, m.TotalAmount,
			m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to update purchase invoice %s: %w", m.DocumentID, err)
		}
		return r.checkDraftUpdate(ctx, doc.Ref(), tag.RowsAffected())

	case *domain.PaymentEntry:
		m := mapping.ToModelPaymentEntry(*d)
		query := `
			UPDATE payment_entries
			SET project_id = $2, notes = $3, payment_date = $4, currency_code = $5,
			    exchange_rate = $6, amount = $7, source_account_code = $8, target_account_code = $9,
			    last_updated_at = $10, last_updated_by = $11
			WHERE document_id = $1 AND status = 'DRAFT';
		`
		tag, err := r.Pool.Exec(ctx, query, m.DocumentID, m.ProjectID, m.Notes, m.PaymentDate,
			m.CurrencyCode, m.ExchangeRate, m.Amount, m.SourceAccountCode, m.TargetAccountCode,
			m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return fmt.Errorf("failed to update payment entry %s: %w", m.DocumentID, err)
		}
		return r.checkDraftUpdate(ctx, doc.Ref(), tag.RowsAffected())

	case *domain.JournalEntry:
		return r.updateDraftJournalEntry(ctx, d)

	default:
		return fmt.Errorf("%w: %T", apperrors.ErrUnsupportedDocumentType, doc)
	}
}

// updateDraftJournalEntry replaces the header fields and the full line set
// in one transaction.
func (r *PgxDocumentRepository) updateDraftJournalEntry(ctx context.Context, d *domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(*d)
	lines := mapping.ToModelJournalLines(d.DocumentID, d.Lines)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE journal_entries
		SET project_id = $2, notes = $3, entry_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $1 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query, m.DocumentID, m.ProjectID, m.Notes, m.EntryDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.checkDraftUpdate(ctx, d.Ref(), 0)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE journal_id = $1;`, m.DocumentID); err != nil {
		return fmt.Errorf("failed to clear journal lines for %s: %w", m.DocumentID, err)
	}
	if err := insertJournalLines(ctx, tx, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// checkDraftUpdate distinguishes a missing document from one that has left
// Draft when a guarded update touched no rows.
func (r *PgxDocumentRepository) checkDraftUpdate(ctx context.Context, ref domain.DocumentRef, affected int64) error {
	if affected > 0 {
		return nil
	}
	if _, err := r.FindDocument(ctx, ref); err != nil {
		return err
	}
	return fmt.Errorf("%w: document %s", apperrors.ErrDocumentNotDraft, ref.ID)
}
