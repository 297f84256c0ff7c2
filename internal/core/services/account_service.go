package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
)

// AccountService is the account registry. It manages the chart of accounts
// and resolves posting targets by code or by purpose for the posting rules.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: repo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ParentCode != nil {
		if _, err := s.accountRepo.FindAccountByCode(ctx, *req.ParentCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, *req.ParentCode)
			}
			return nil, err
		}
	}

	purpose := domain.AccountPurpose(req.Purpose)
	// Receivable and payable control accounts are resolved per currency, so
	// they must carry one.
	if (purpose == domain.PurposeReceivable || purpose == domain.PurposePayable) && req.CurrencyCode == nil {
		return nil, fmt.Errorf("%w: purpose %s requires a currency code", apperrors.ErrValidation, purpose)
	}

	now := time.Now()
	account := domain.Account{
		AccountCode:  req.AccountCode,
		Name:         req.Name,
		AccountType:  domain.AccountType(req.AccountType),
		ParentCode:   req.ParentCode,
		CurrencyCode: req.CurrencyCode,
		Purpose:      purpose,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_code", account.AccountCode))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_code", account.AccountCode))
	return &account, nil
}

func (s *AccountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by code in repository", slog.String("error", err.Error()), slog.String("account_code", accountCode))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// AccountByCode resolves an account for the posting rules. A missing or
// inactive account surfaces ErrMissingAccount so the submission fails as an
// unprocessable document rather than a lookup error.
func (s *AccountService) AccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrMissingAccount, code)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrMissingAccount, code)
	}
	return account, nil
}

// PurposeAccount resolves the control account configured for a purpose,
// narrowed by currency for the per-currency purposes.
func (s *AccountService) PurposeAccount(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByPurpose(ctx, purpose, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if currencyCode != "" {
				return nil, fmt.Errorf("%w: no %s account configured for currency %s", apperrors.ErrMissingAccount, purpose, currencyCode)
			}
			return nil, fmt.Errorf("%w: no %s account configured", apperrors.ErrMissingAccount, purpose)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s account %s is inactive", apperrors.ErrMissingAccount, purpose, account.AccountCode)
	}
	return account, nil
}
