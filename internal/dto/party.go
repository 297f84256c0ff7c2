package dto

import "github.com/freightops/erpshipping/internal/core/domain"

// CreateCustomerRequest defines the payload for creating a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	SMark string `json:"sMark" binding:"required"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	SMark      string `json:"sMark"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		SMark:      c.SMark,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to []CustomerResponse.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// CreateAgentRequest defines the payload for creating an agent.
type CreateAgentRequest struct {
	Name        string         `json:"name" binding:"required"`
	BankDetails map[string]any `json:"bankDetails"`
}

// AgentResponse defines the data returned for an agent.
type AgentResponse struct {
	AgentID     string         `json:"agentID"`
	Name        string         `json:"name"`
	BankDetails map[string]any `json:"bankDetails,omitempty"`
}

// ToAgentResponse converts a domain.Agent to AgentResponse DTO.
func ToAgentResponse(a *domain.Agent) AgentResponse {
	return AgentResponse{
		AgentID:     a.AgentID,
		Name:        a.Name,
		BankDetails: a.BankDetails,
	}
}

// ToAgentResponses converts a slice of domain.Agent to []AgentResponse.
func ToAgentResponses(agents []domain.Agent) []AgentResponse {
	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = ToAgentResponse(&agents[i])
	}
	return responses
}
