package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
)

// CurrencyService manages currency master data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: repo}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save currency in repository", slog.String("error", err.Error()), slog.String("currency_code", currency.CurrencyCode))
		}
		return nil, err
	}

	logger.Info("Currency created", slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find currency in repository", slog.String("error", err.Error()), slog.String("currency_code", currencyCode))
		}
		return nil, err
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		logger.Error("Failed to list currencies from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
