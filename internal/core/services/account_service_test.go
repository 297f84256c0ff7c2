package services_test

import (
	"context"
	"testing"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/core/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByPurpose(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error) {
	args := m.Called(ctx, purpose, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func usd() *string {
	s := "USD"
	return &s
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	req := dto.CreateAccountRequest{
		AccountCode:  "AR_USD",
		Name:         "Accounts Receivable (USD)",
		AccountType:  "ASSET",
		CurrencyCode: usd(),
		Purpose:      "RECEIVABLE",
	}
	repo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := svc.CreateAccount(ctx, req, "user-1")

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "AR_USD", account.AccountCode)
	assert.Equal(t, domain.Asset, account.AccountType)
	assert.Equal(t, domain.PurposeReceivable, account.Purpose)
	assert.True(t, account.IsActive)
	assert.Equal(t, "user-1", account.CreatedBy)
	repo.AssertExpectations(t)
}

func TestCreateAccount_PerCurrencyPurposeRequiresCurrency(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	req := dto.CreateAccountRequest{
		AccountCode: "AP_GENERIC",
		Name:        "Accounts Payable",
		AccountType: "LIABILITY",
		Purpose:     "PAYABLE",
	}

	_, err := svc.CreateAccount(ctx, req, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
}

func TestCreateAccount_UnknownParent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	parent := "NOPE"
	req := dto.CreateAccountRequest{
		AccountCode: "BANK_INR",
		Name:        "Bank (INR)",
		AccountType: "ASSET",
		ParentCode:  &parent,
	}
	repo.On("FindAccountByCode", ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CreateAccount(ctx, req, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestAccountByCode_MapsNotFoundToMissingAccount(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByCode", ctx, "GHOST").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.AccountByCode(ctx, "GHOST")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
	repo.AssertExpectations(t)
}

func TestAccountByCode_InactiveAccountIsMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByCode", ctx, "OLD_BANK").Return(&domain.Account{
		AccountCode: "OLD_BANK",
		AccountType: domain.Asset,
		IsActive:    false,
	}, nil).Once()

	_, err := svc.AccountByCode(ctx, "OLD_BANK")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
}

func TestPurposeAccount_ResolvesPerCurrency(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByPurpose", ctx, domain.PurposeReceivable, "USD").Return(&domain.Account{
		AccountCode:  "AR_USD",
		AccountType:  domain.Asset,
		CurrencyCode: usd(),
		Purpose:      domain.PurposeReceivable,
		IsActive:     true,
	}, nil).Once()

	account, err := svc.PurposeAccount(ctx, domain.PurposeReceivable, "USD")

	require.NoError(t, err)
	assert.Equal(t, "AR_USD", account.AccountCode)
	repo.AssertExpectations(t)
}

func TestPurposeAccount_UnconfiguredPurpose(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByPurpose", ctx, domain.PurposePayable, "RMB").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.PurposeAccount(ctx, domain.PurposePayable, "RMB")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
	assert.Contains(t, err.Error(), "RMB")
}
