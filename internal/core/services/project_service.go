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
	"github.com/google/uuid"
)

// ProjectService manages projects, the per-container profitability dimension.
type ProjectService struct {
	projectRepo  portsrepo.ProjectRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, customerRepo: customerRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		ContainerNumber: req.ContainerNumber,
		CustomerID:      req.CustomerID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save project in repository", slog.String("error", err.Error()), slog.String("project_id", project.ProjectID))
		}
		return nil, err
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID), slog.String("container_number", project.ContainerNumber))
	return &project, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find project in repository", slog.String("error", err.Error()), slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	projects, err := s.projectRepo.ListProjects(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to list projects from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}
