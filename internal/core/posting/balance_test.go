package posting_test

import (
	"testing"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/core/posting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func row(debit, credit string) domain.LedgerRow {
	return domain.LedgerRow{
		DebitBase:  decimal.RequireFromString(debit),
		CreditBase: decimal.RequireFromString(credit),
	}
}

func TestValidateBalanced(t *testing.T) {
	tests := []struct {
		name    string
		rows    []domain.LedgerRow
		wantErr bool
	}{
		{
			name: "balanced pair",
			rows: []domain.LedgerRow{row("1000.00", "0"), row("0", "1000.00")},
		},
		{
			name: "balanced multi-line",
			rows: []domain.LedgerRow{row("600.00", "0"), row("400.00", "0"), row("0", "1000.00")},
		},
		{
			name: "empty batch balances trivially",
			rows: nil,
		},
		{
			name:    "off by a paisa",
			rows:    []domain.LedgerRow{row("1000.00", "0"), row("0", "999.99")},
			wantErr: true,
		},
		{
			name:    "single sided",
			rows:    []domain.LedgerRow{row("50.00", "0")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := posting.ValidateBalanced(tt.rows)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrImbalancedPosting)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBalanced_ReportsBothSums(t *testing.T) {
	err := posting.ValidateBalanced([]domain.LedgerRow{row("10.00", "0"), row("0", "7.50")})
	assert.ErrorContains(t, err, "10")
	assert.ErrorContains(t, err, "7.5")
}
