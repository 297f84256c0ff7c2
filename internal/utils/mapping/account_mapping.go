package mapping

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountCode:  d.AccountCode,
		Name:         d.Name,
		AccountType:  models.AccountType(d.AccountType),
		ParentCode:   d.ParentCode,
		CurrencyCode: d.CurrencyCode,
		Purpose:      models.AccountPurpose(d.Purpose),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountCode:  m.AccountCode,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		ParentCode:   m.ParentCode,
		CurrencyCode: m.CurrencyCode,
		Purpose:      domain.AccountPurpose(m.Purpose),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
