package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/dto"
)

// UserSvcFacade manages operator accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Authenticate verifies credentials and returns the active user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade issues bearer tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateToken(user *domain.User) (string, error)
}
