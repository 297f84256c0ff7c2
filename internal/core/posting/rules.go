package posting

import (
	"context"
	"fmt"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// baseScale is the minor-unit precision of the base currency. Base amounts
// are rounded half away from zero to this scale exactly once, at posting
// time, and never recomputed later.
const baseScale = 2

// AccountSource resolves chart-of-accounts entries for the posting rules.
// Implementations are pure reads; a failed resolution surfaces
// apperrors.ErrMissingAccount naming what was asked for.
type AccountSource interface {
	// AccountByCode resolves an account by its stable code.
	AccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// PurposeAccount resolves the control account for a well-known purpose.
	// currencyCode selects the per-currency mapping for receivable/payable
	// purposes and is empty for the currency-agnostic freight purposes.
	PurposeAccount(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error)
}

// BaseAmount converts a foreign amount into the base currency at the given
// exchange rate, at the ledger's stated precision.
func BaseAmount(foreign, rate decimal.Decimal) decimal.Decimal {
	return foreign.Mul(rate).Round(baseScale)
}

// CandidateRows applies the posting rule matching the document variant and
// returns the ordered ledger rows the document must produce. It writes
// nothing; the caller validates balance and persists.
//
// RowID, RowSeq and audit fields are left unset; the submission flow
// assigns them.
func CandidateRows(ctx context.Context, doc domain.Document, accounts AccountSource) ([]domain.LedgerRow, error) {
	switch d := doc.(type) {
	case *domain.SalesInvoice:
		return salesInvoiceRows(ctx, d, accounts)
	case *domain.PurchaseInvoice:
		return purchaseInvoiceRows(ctx, d, accounts)
	case *domain.PaymentEntry:
		return paymentEntryRows(ctx, d, accounts)
	case *domain.JournalEntry:
		return journalEntryRows(d)
	default:
		return nil, fmt.Errorf("%w: %T", apperrors.ErrUnsupportedDocumentType, doc)
	}
}

// salesInvoiceRows: debit the per-currency receivable control account,
// credit freight income, both tagged with the invoice's project.
func salesInvoiceRows(ctx context.Context, inv *domain.SalesInvoice, accounts AccountSource) ([]domain.LedgerRow, error) {
	base := BaseAmount(inv.TotalAmount, inv.ExchangeRate)

	arAccount, err := accounts.PurposeAccount(ctx, domain.PurposeReceivable, inv.CurrencyCode)
	if err != nil {
		return nil, err
	}
	incomeAccount, err := accounts.PurposeAccount(ctx, domain.PurposeFreightIncome, "")
	if err != nil {
		return nil, err
	}

	debit, err := newRow(arAccount.AccountCode, inv.InvoiceDate, inv.ProjectID, inv.CurrencyCode,
		base, decimal.Zero, inv.TotalAmount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	credit, err := newRow(incomeAccount.AccountCode, inv.InvoiceDate, inv.ProjectID, inv.CurrencyCode,
		decimal.Zero, base, decimal.Zero, inv.TotalAmount)
	if err != nil {
		return nil, err
	}
	return []domain.LedgerRow{debit, credit}, nil
}

// purchaseInvoiceRows: debit freight charges, credit the per-currency
// payable control account.
func purchaseInvoiceRows(ctx context.Context, inv *domain.PurchaseInvoice, accounts AccountSource) ([]domain.LedgerRow, error) {
	base := BaseAmount(inv.TotalAmount, inv.ExchangeRate)

	expenseAccount, err := accounts.PurposeAccount(ctx, domain.PurposeFreightCharges, "")
	if err != nil {
		return nil, err
	}
	apAccount, err := accounts.PurposeAccount(ctx, domain.PurposePayable, inv.CurrencyCode)
	if err != nil {
		return nil, err
	}

	debit, err := newRow(expenseAccount.AccountCode, inv.InvoiceDate, inv.ProjectID, inv.CurrencyCode,
		base, decimal.Zero, inv.TotalAmount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	credit, err := newRow(apAccount.AccountCode, inv.InvoiceDate, inv.ProjectID, inv.CurrencyCode,
		decimal.Zero, base, decimal.Zero, inv.TotalAmount)
	if err != nil {
		return nil, err
	}
	return []domain.LedgerRow{debit, credit}, nil
}

// paymentEntryRows: always debit the target account and credit the source
// account. PaymentType and PartyType are descriptive metadata and play no
// part here. The accounts are caller-supplied codes, resolved only to verify
// they exist.
func paymentEntryRows(ctx context.Context, pe *domain.PaymentEntry, accounts AccountSource) ([]domain.LedgerRow, error) {
	base := BaseAmount(pe.Amount, pe.ExchangeRate)

	target, err := accounts.AccountByCode(ctx, pe.TargetAccountCode)
	if err != nil {
		return nil, err
	}
	source, err := accounts.AccountByCode(ctx, pe.SourceAccountCode)
	if err != nil {
		return nil, err
	}

	debit, err := newRow(target.AccountCode, pe.PaymentDate, pe.ProjectID, pe.CurrencyCode,
		base, decimal.Zero, pe.Amount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	credit, err := newRow(source.AccountCode, pe.PaymentDate, pe.ProjectID, pe.CurrencyCode,
		decimal.Zero, base, decimal.Zero, pe.Amount)
	if err != nil {
		return nil, err
	}
	return []domain.LedgerRow{debit, credit}, nil
}

// journalEntryRows: one row per line with a nonzero foreign amount, each
// converted at its own exchange rate. Lines with both sides zero are
// skipped; if nothing remains the journal is empty.
func journalEntryRows(je *domain.JournalEntry) ([]domain.LedgerRow, error) {
	rows := make([]domain.LedgerRow, 0, len(je.Lines))
	for _, line := range je.Lines {
		if line.IsZero() {
			continue
		}
		row, err := newRow(line.AccountCode, je.EntryDate, je.ProjectID, line.CurrencyCode,
			BaseAmount(line.DebitForeign, line.ExchangeRate),
			BaseAmount(line.CreditForeign, line.ExchangeRate),
			line.DebitForeign, line.CreditForeign)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyJournal
	}
	return rows, nil
}

// newRow builds one candidate ledger row. A row may carry a base amount on
// one side only.
func newRow(accountCode string, txnDate time.Time, projectID *string, currencyCode string,
	debitBase, creditBase, debitForeign, creditForeign decimal.Decimal) (domain.LedgerRow, error) {

	if !debitBase.IsZero() && !creditBase.IsZero() {
		return domain.LedgerRow{}, fmt.Errorf("%w: account %s has both debit and credit base amounts", apperrors.ErrValidation, accountCode)
	}

	return domain.LedgerRow{
		AccountCode:     accountCode,
		TransactionDate: txnDate,
		ProjectID:       projectID,
		DebitBase:       debitBase,
		CreditBase:      creditBase,
		DebitForeign:    debitForeign,
		CreditForeign:   creditForeign,
		CurrencyCode:    currencyCode,
	}, nil
}
