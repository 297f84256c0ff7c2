package pgsql

import (
	"testing"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The listing page must read the full variant columns in one query rather
// than fetching ids and loading each document separately.
func TestDocumentPageScanner_FullVariantColumns(t *testing.T) {
	tests := []struct {
		kind        domain.DocumentKind
		wantColumns []string
	}{
		{domain.KindSalesInvoice, []string{"customer_id", "due_date", "exchange_rate", "total_amount"}},
		{domain.KindPurchaseInvoice, []string{"agent_id", "invoice_date", "exchange_rate", "total_amount"}},
		{domain.KindPaymentEntry, []string{"payment_type", "party_type", "amount", "source_account_code", "target_account_code"}},
		{domain.KindJournalEntry, []string{"entry_date"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			cols, collect, err := documentPageScanner(tt.kind)

			require.NoError(t, err)
			require.NotNil(t, collect)
			assert.Contains(t, cols, "document_id")
			assert.Contains(t, cols, "status")
			for _, col := range tt.wantColumns {
				assert.Contains(t, cols, col)
			}
		})
	}
}

func TestDocumentPageScanner_UnknownKind(t *testing.T) {
	_, _, err := documentPageScanner(domain.DocumentKind("CREDIT_NOTE"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedDocumentType)
}

func TestDocumentTable_KnownKinds(t *testing.T) {
	table, err := documentTable(domain.KindSalesInvoice)
	require.NoError(t, err)
	assert.Equal(t, "sales_invoices", table)

	_, err = documentTable(domain.DocumentKind("CREDIT_NOTE"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedDocumentType)
}
