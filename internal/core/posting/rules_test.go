package posting_test

import (
	"context"
	"testing"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/core/posting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AccountSource ---
type MockAccountSource struct {
	mock.Mock
}

var _ posting.AccountSource = (*MockAccountSource)(nil)

func (m *MockAccountSource) AccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountSource) PurposeAccount(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error) {
	args := m.Called(ctx, purpose, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func strPtr(s string) *string { return &s }

func testAccount(code string, accType domain.AccountType) *domain.Account {
	return &domain.Account{AccountCode: code, Name: code, AccountType: accType, IsActive: true}
}

func TestBaseAmount_RoundsHalfAwayFromZero(t *testing.T) {
	foreign := decimal.RequireFromString("100.005")
	rate := decimal.NewFromInt(1)
	assert.Equal(t, "100.01", posting.BaseAmount(foreign, rate).String())

	foreign = decimal.RequireFromString("333.33")
	rate = decimal.RequireFromString("1.115")
	// 333.33 * 1.115 = 371.66295 -> 371.66
	assert.Equal(t, "371.66", posting.BaseAmount(foreign, rate).String())
}

func TestCandidateRows_SalesInvoice(t *testing.T) {
	accounts := new(MockAccountSource)
	accounts.On("PurposeAccount", mock.Anything, domain.PurposeReceivable, "INR").
		Return(testAccount("AR_INR", domain.Asset), nil)
	accounts.On("PurposeAccount", mock.Anything, domain.PurposeFreightIncome, "").
		Return(testAccount("FREIGHT_INCOME", domain.Income), nil)

	invoiceDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	inv := &domain.SalesInvoice{
		DocumentCore: domain.DocumentCore{DocumentID: "si-1", Status: domain.Draft, ProjectID: strPtr("proj-1")},
		CustomerID:   "cust-1",
		InvoiceDate:  invoiceDate,
		CurrencyCode: "INR",
		ExchangeRate: decimal.NewFromInt(1),
		TotalAmount:  decimal.RequireFromString("1000.00"),
	}

	rows, err := posting.CandidateRows(context.Background(), inv, accounts)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AR_INR", rows[0].AccountCode)
	assert.True(t, rows[0].DebitBase.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, rows[0].DebitForeign.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, rows[0].CreditBase.IsZero())
	assert.Equal(t, "proj-1", *rows[0].ProjectID)
	assert.Equal(t, invoiceDate, rows[0].TransactionDate)

	assert.Equal(t, "FREIGHT_INCOME", rows[1].AccountCode)
	assert.True(t, rows[1].CreditBase.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, rows[1].CreditForeign.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, rows[1].DebitBase.IsZero())
	assert.Equal(t, "proj-1", *rows[1].ProjectID)

	require.NoError(t, posting.ValidateBalanced(rows))
}

func TestCandidateRows_SalesInvoice_MissingReceivableMapping(t *testing.T) {
	accounts := new(MockAccountSource)
	accounts.On("PurposeAccount", mock.Anything, domain.PurposeReceivable, "RMB").
		Return(nil, apperrors.ErrMissingAccount)

	inv := &domain.SalesInvoice{
		DocumentCore: domain.DocumentCore{DocumentID: "si-2", Status: domain.Draft},
		CurrencyCode: "RMB",
		ExchangeRate: decimal.NewFromInt(12),
		TotalAmount:  decimal.NewFromInt(500),
	}

	_, err := posting.CandidateRows(context.Background(), inv, accounts)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
}

func TestCandidateRows_PurchaseInvoice_ConvertsAtRate(t *testing.T) {
	accounts := new(MockAccountSource)
	accounts.On("PurposeAccount", mock.Anything, domain.PurposeFreightCharges, "").
		Return(testAccount("FREIGHT_CHARGES", domain.Expense), nil)
	accounts.On("PurposeAccount", mock.Anything, domain.PurposePayable, "USD").
		Return(testAccount("AP_USD", domain.Liability), nil)

	inv := &domain.PurchaseInvoice{
		DocumentCore: domain.DocumentCore{DocumentID: "pi-1", Status: domain.Draft, ProjectID: strPtr("proj-1")},
		AgentID:      "agent-1",
		InvoiceDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		ExchangeRate: decimal.RequireFromString("2.00"),
		TotalAmount:  decimal.RequireFromString("500.00"),
	}

	rows, err := posting.CandidateRows(context.Background(), inv, accounts)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "FREIGHT_CHARGES", rows[0].AccountCode)
	assert.True(t, rows[0].DebitBase.Equal(decimal.RequireFromString("1000.00")), "base = 500.00 x 2.00")
	assert.True(t, rows[0].DebitForeign.Equal(decimal.RequireFromString("500.00")))

	assert.Equal(t, "AP_USD", rows[1].AccountCode)
	assert.True(t, rows[1].CreditBase.Equal(decimal.RequireFromString("1000.00")))

	require.NoError(t, posting.ValidateBalanced(rows))
}

func TestCandidateRows_PaymentEntry_DebitsTargetCreditsSource(t *testing.T) {
	accounts := new(MockAccountSource)
	accounts.On("AccountByCode", mock.Anything, "BANK_INR").
		Return(testAccount("BANK_INR", domain.Asset), nil)
	accounts.On("AccountByCode", mock.Anything, "AR_INR").
		Return(testAccount("AR_INR", domain.Asset), nil)

	// Direction must not depend on PaymentType/PartyType.
	for _, paymentType := range []domain.PaymentType{domain.PaymentReceive, domain.PaymentPay} {
		pe := &domain.PaymentEntry{
			DocumentCore:      domain.DocumentCore{DocumentID: "pe-1", Status: domain.Draft},
			PaymentType:       paymentType,
			PartyType:         domain.PartyCustomer,
			PaymentDate:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			CurrencyCode:      "INR",
			ExchangeRate:      decimal.NewFromInt(1),
			Amount:            decimal.RequireFromString("750.00"),
			SourceAccountCode: "AR_INR",
			TargetAccountCode: "BANK_INR",
		}

		rows, err := posting.CandidateRows(context.Background(), pe, accounts)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "BANK_INR", rows[0].AccountCode)
		assert.True(t, rows[0].DebitBase.Equal(decimal.RequireFromString("750.00")))
		assert.Equal(t, "AR_INR", rows[1].AccountCode)
		assert.True(t, rows[1].CreditBase.Equal(decimal.RequireFromString("750.00")))
	}
}

func TestCandidateRows_JournalEntry_SkipsZeroLines(t *testing.T) {
	je := &domain.JournalEntry{
		DocumentCore: domain.DocumentCore{DocumentID: "je-1", Status: domain.Draft},
		EntryDate:    time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{AccountCode: "BANK_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1),
				DebitForeign: decimal.RequireFromString("200.00"), CreditForeign: decimal.Zero},
			{AccountCode: "UNUSED", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1),
				DebitForeign: decimal.Zero, CreditForeign: decimal.Zero},
			{AccountCode: "AGENT_ADVANCE", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1),
				DebitForeign: decimal.Zero, CreditForeign: decimal.RequireFromString("200.00")},
		},
	}

	rows, err := posting.CandidateRows(context.Background(), je, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the all-zero line must not produce a row")
	assert.Equal(t, "BANK_INR", rows[0].AccountCode)
	assert.Equal(t, "AGENT_ADVANCE", rows[1].AccountCode)
	require.NoError(t, posting.ValidateBalanced(rows))
}

func TestCandidateRows_JournalEntry_PerLineRates(t *testing.T) {
	// One line in USD at 80.00, one in INR at 1.00; both convert to the same base.
	je := &domain.JournalEntry{
		DocumentCore: domain.DocumentCore{DocumentID: "je-2", Status: domain.Draft},
		EntryDate:    time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{AccountCode: "FUNDS_AGENT_USD", CurrencyCode: "USD", ExchangeRate: decimal.RequireFromString("80.00"),
				DebitForeign: decimal.RequireFromString("10.00"), CreditForeign: decimal.Zero},
			{AccountCode: "BANK_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1),
				DebitForeign: decimal.Zero, CreditForeign: decimal.RequireFromString("800.00")},
		},
	}

	rows, err := posting.CandidateRows(context.Background(), je, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].DebitBase.Equal(decimal.RequireFromString("800.00")))
	assert.Equal(t, "USD", rows[0].CurrencyCode)
	assert.True(t, rows[1].CreditBase.Equal(decimal.RequireFromString("800.00")))
	require.NoError(t, posting.ValidateBalanced(rows))
}

func TestCandidateRows_JournalEntry_AllZeroLinesFails(t *testing.T) {
	je := &domain.JournalEntry{
		DocumentCore: domain.DocumentCore{DocumentID: "je-3", Status: domain.Draft},
		EntryDate:    time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{AccountCode: "BANK_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1),
				DebitForeign: decimal.Zero, CreditForeign: decimal.Zero},
		},
	}

	_, err := posting.CandidateRows(context.Background(), je, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyJournal)
}

func TestCandidateRows_UnknownVariant(t *testing.T) {
	_, err := posting.CandidateRows(context.Background(), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedDocumentType)
}
