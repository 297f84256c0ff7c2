package dto

import "github.com/freightops/erpshipping/internal/core/domain"

// CreateProjectRequest defines the payload for creating a project (container).
type CreateProjectRequest struct {
	ContainerNumber string `json:"containerNumber" binding:"required,container_number"`
	CustomerID      string `json:"customerID" binding:"required"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID       string `json:"projectID"`
	ContainerNumber string `json:"containerNumber"`
	CustomerID      string `json:"customerID"`
	IsActive        bool   `json:"isActive"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ProjectID,
		ContainerNumber: p.ContainerNumber,
		CustomerID:      p.CustomerID,
		IsActive:        p.IsActive,
	}
}

// ToProjectResponses converts a slice of domain.Project to []ProjectResponse.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
