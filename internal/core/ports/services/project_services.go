package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/dto"
)

// ProjectSvcFacade manages project (container) master data.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
}
