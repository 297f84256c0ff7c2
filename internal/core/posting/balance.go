package posting

import (
	"fmt"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateBalanced checks that the candidate rows of one submission sum to
// equal base debits and credits. Equality is exact at the stored precision;
// there is no tolerance. This gate runs strictly before any write.
func ValidateBalanced(rows []domain.LedgerRow) error {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, row := range rows {
		totalDebits = totalDebits.Add(row.DebitBase)
		totalCredits = totalCredits.Add(row.CreditBase)
	}

	if !totalDebits.Equal(totalCredits) {
		return fmt.Errorf("%w: debits=%s, credits=%s",
			apperrors.ErrImbalancedPosting, totalDebits.String(), totalCredits.String())
	}
	return nil
}
