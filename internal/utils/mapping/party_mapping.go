package mapping

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		SMark:       d.SMark,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		SMark:       m.SMark,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}

// ToModelAgent converts a domain Agent to a model Agent
func ToModelAgent(d domain.Agent) models.Agent {
	return models.Agent{
		AgentID:     d.AgentID,
		Name:        d.Name,
		BankDetails: d.BankDetails,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAgent converts a model Agent to a domain Agent
func ToDomainAgent(m models.Agent) domain.Agent {
	return domain.Agent{
		AgentID:     m.AgentID,
		Name:        m.Name,
		BankDetails: m.BankDetails,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAgentSlice converts a slice of model Agents to domain Agents
func ToDomainAgentSlice(ms []models.Agent) []domain.Agent {
	ds := make([]domain.Agent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAgent(m)
	}
	return ds
}
