package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/dto"
)

// CurrencySvcFacade manages currency master data.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
