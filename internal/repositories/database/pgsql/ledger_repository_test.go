package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListRowsQuery_OrdersByInsertionOrdinal(t *testing.T) {
	query, args, err := buildListRowsQuery(domain.LedgerFilter{}, 50, nil)

	require.NoError(t, err)
	// Rows of one submission share a created_at, so only the ordinal can
	// keep a document's debit leg ahead of its credit leg.
	assert.True(t, strings.HasSuffix(query, ` ORDER BY row_ordinal LIMIT $1;`), "query was: %s", query)
	assert.NotContains(t, query, "ORDER BY created_at")
	require.Len(t, args, 1)
	assert.Equal(t, 51, args[0], "page reads one extra row to detect more")
}

func TestBuildListRowsQuery_SelectsOrdinal(t *testing.T) {
	query, _, err := buildListRowsQuery(domain.LedgerFilter{}, 10, nil)

	require.NoError(t, err)
	assert.Contains(t, query, ", row_ordinal FROM ledger_rows")
}

func TestBuildListRowsQuery_TokenResumesAfterOrdinal(t *testing.T) {
	token := pagination.EncodeOrdinalToken(742)

	query, args, err := buildListRowsQuery(domain.LedgerFilter{}, 25, &token)

	require.NoError(t, err)
	assert.Contains(t, query, ` AND row_ordinal > $1`)
	require.Len(t, args, 2)
	assert.Equal(t, int64(742), args[0])
	assert.Equal(t, 26, args[1])
}

func TestBuildListRowsQuery_InvalidToken(t *testing.T) {
	token := "not-base64!"

	_, _, err := buildListRowsQuery(domain.LedgerFilter{}, 25, &token)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBuildListRowsQuery_AppliesFilters(t *testing.T) {
	projectID := "proj-1"
	accountCode := "AR_USD"
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	filter := domain.LedgerFilter{
		ProjectID:   &projectID,
		AccountCode: &accountCode,
		DateFrom:    &from,
		DateTo:      &to,
	}

	query, args, err := buildListRowsQuery(filter, 10, nil)

	require.NoError(t, err)
	assert.Contains(t, query, ` AND project_id = $1`)
	assert.Contains(t, query, ` AND account_code = $2`)
	assert.Contains(t, query, ` AND transaction_date >= $3`)
	assert.Contains(t, query, ` AND transaction_date <= $4`)
	require.Len(t, args, 5)
	assert.Equal(t, projectID, args[0])
	assert.Equal(t, accountCode, args[1])
}
