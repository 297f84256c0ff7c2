package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the lifecycle state of a financial document.
type DocumentStatus string

const (
	Draft     DocumentStatus = "DRAFT"
	Submitted DocumentStatus = "SUBMITTED"
	Cancelled DocumentStatus = "CANCELLED"
)

// DocumentCore holds the workflow columns shared by every document table.
type DocumentCore struct {
	DocumentID  string         `db:"document_id"`
	Status      DocumentStatus `db:"status"`
	ProjectID   *string        `db:"project_id"` // Nullable
	Notes       string         `db:"notes"`
	SubmittedBy *string        `db:"submitted_by"`
	SubmittedAt *time.Time     `db:"submitted_at"`
	AuditFields
}

// SalesInvoice maps the sales_invoices table.
type SalesInvoice struct {
	DocumentCore
	CustomerID   string          `db:"customer_id"`
	InvoiceDate  time.Time       `db:"invoice_date"`
	DueDate      time.Time       `db:"due_date"`
	CurrencyCode string          `db:"currency_code"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
}

// PurchaseInvoice maps the purchase_invoices table.
type PurchaseInvoice struct {
	DocumentCore
	AgentID      string          `db:"agent_id"`
	InvoiceDate  time.Time       `db:"invoice_date"`
	CurrencyCode string          `db:"currency_code"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
}

// PaymentEntry maps the payment_entries table.
type PaymentEntry struct {
	DocumentCore
	PaymentType       string          `db:"payment_type"`
	PartyType         string          `db:"party_type"`
	CustomerID        *string         `db:"customer_id"`
	AgentID           *string         `db:"agent_id"`
	PaymentDate       time.Time       `db:"payment_date"`
	CurrencyCode      string          `db:"currency_code"`
	ExchangeRate      decimal.Decimal `db:"exchange_rate"`
	Amount            decimal.Decimal `db:"amount"`
	SourceAccountCode string          `db:"source_account_code"`
	TargetAccountCode string          `db:"target_account_code"`
}

// JournalEntry maps the journal_entries table; lines live in
// journal_entry_lines and are loaded separately.
type JournalEntry struct {
	DocumentCore
	EntryDate time.Time `db:"entry_date"`
}

// JournalLine maps the journal_entry_lines table.
type JournalLine struct {
	LineID        string          `db:"line_id"`
	JournalID     string          `db:"journal_id"`
	LineSeq       int             `db:"line_seq"`
	AccountCode   string          `db:"account_code"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	DebitForeign  decimal.Decimal `db:"debit_foreign"`
	CreditForeign decimal.Decimal `db:"credit_foreign"`
}
