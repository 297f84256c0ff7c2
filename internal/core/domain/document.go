package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind discriminates the financial document variants.
type DocumentKind string

const (
	KindSalesInvoice    DocumentKind = "SALES_INVOICE"
	KindPurchaseInvoice DocumentKind = "PURCHASE_INVOICE"
	KindPaymentEntry    DocumentKind = "PAYMENT_ENTRY"
	KindJournalEntry    DocumentKind = "JOURNAL_ENTRY"
)

// DocumentStatus is the lifecycle state of a financial document.
// Draft documents are freely editable; Submitted is terminal and is the only
// state with ledger effects. Cancelled exists in the data model but no
// operation here transitions into or out of it.
type DocumentStatus string

const (
	Draft     DocumentStatus = "DRAFT"
	Submitted DocumentStatus = "SUBMITTED"
	Cancelled DocumentStatus = "CANCELLED"
)

// DocumentRef is the typed composite key identifying the exact document
// instance a ledger row was produced by.
type DocumentRef struct {
	Kind DocumentKind `json:"kind"`
	ID   string       `json:"id"`
}

// DocumentCore holds the workflow fields shared by every document variant.
type DocumentCore struct {
	DocumentID  string         `json:"documentID"` // Primary Key (e.g., UUID)
	Status      DocumentStatus `json:"status"`
	ProjectID   *string        `json:"projectID"` // Nullable profitability tag
	Notes       string         `json:"notes"`
	SubmittedBy *string        `json:"submittedBy"`
	SubmittedAt *time.Time     `json:"submittedAt"`
	AuditFields
}

// Document is the sum type over the four financial document variants.
// Each variant carries its own posting rule, selected by a type switch in
// the posting package.
type Document interface {
	Kind() DocumentKind
	Ref() DocumentRef
	Base() *DocumentCore
}

// SalesInvoice bills a customer for freight. Posting: debit the per-currency
// receivable control account, credit freight income.
type SalesInvoice struct {
	DocumentCore
	CustomerID   string          `json:"customerID"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	DueDate      time.Time       `json:"dueDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"` // In the invoice currency
}

func (d *SalesInvoice) Kind() DocumentKind  { return KindSalesInvoice }
func (d *SalesInvoice) Ref() DocumentRef    { return DocumentRef{Kind: KindSalesInvoice, ID: d.DocumentID} }
func (d *SalesInvoice) Base() *DocumentCore { return &d.DocumentCore }

// PurchaseInvoice records an agent's bill. Posting: debit freight charges,
// credit the per-currency payable control account.
type PurchaseInvoice struct {
	DocumentCore
	AgentID      string          `json:"agentID"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"` // In the invoice currency
}

func (d *PurchaseInvoice) Kind() DocumentKind { return KindPurchaseInvoice }
func (d *PurchaseInvoice) Ref() DocumentRef {
	return DocumentRef{Kind: KindPurchaseInvoice, ID: d.DocumentID}
}
func (d *PurchaseInvoice) Base() *DocumentCore { return &d.DocumentCore }

// PaymentType and PartyType describe a payment for reporting. They never
// influence the posting direction, which is always debit target / credit
// source.
type PaymentType string

const (
	PaymentReceive PaymentType = "RECEIVE"
	PaymentPay     PaymentType = "PAY"
)

type PartyType string

const (
	PartyCustomer PartyType = "CUSTOMER"
	PartyAgent    PartyType = "AGENT"
)

// PaymentEntry moves money between two caller-chosen accounts, e.g. a
// customer receipt into the bank or an advance out to an agent.
type PaymentEntry struct {
	DocumentCore
	PaymentType       PaymentType     `json:"paymentType"`
	PartyType         PartyType       `json:"partyType"`
	CustomerID        *string         `json:"customerID"`
	AgentID           *string         `json:"agentID"`
	PaymentDate       time.Time       `json:"paymentDate"`
	CurrencyCode      string          `json:"currencyCode"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	Amount            decimal.Decimal `json:"amount"` // In the payment currency
	SourceAccountCode string          `json:"sourceAccountCode"`
	TargetAccountCode string          `json:"targetAccountCode"`
}

func (d *PaymentEntry) Kind() DocumentKind  { return KindPaymentEntry }
func (d *PaymentEntry) Ref() DocumentRef    { return DocumentRef{Kind: KindPaymentEntry, ID: d.DocumentID} }
func (d *PaymentEntry) Base() *DocumentCore { return &d.DocumentCore }

// JournalLine is one leg of a JournalEntry. Each line carries its own
// currency and exchange rate; base amounts are always derived from the
// foreign amounts, never stored independently.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	AccountCode  string          `json:"accountCode"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	DebitForeign decimal.Decimal `json:"debitForeign"`
	CreditForeign decimal.Decimal `json:"creditForeign"`
}

// IsZero reports whether the line has no foreign amount on either side.
// Zero lines contribute no ledger row.
func (l JournalLine) IsZero() bool {
	return l.DebitForeign.IsZero() && l.CreditForeign.IsZero()
}

// JournalEntry is the free-form document for multi-line postings such as
// agent advances, currency conversions and internal transfers.
type JournalEntry struct {
	DocumentCore
	EntryDate time.Time     `json:"entryDate"`
	Lines     []JournalLine `json:"lines"`
}

func (d *JournalEntry) Kind() DocumentKind  { return KindJournalEntry }
func (d *JournalEntry) Ref() DocumentRef    { return DocumentRef{Kind: KindJournalEntry, ID: d.DocumentID} }
func (d *JournalEntry) Base() *DocumentCore { return &d.DocumentCore }
