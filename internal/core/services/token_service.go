package services

import (
	"time"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/utils"
)

// TokenService issues signed bearer tokens carrying the user's role.
type TokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

func NewTokenService(secret string, expiry time.Duration, issuer string) *TokenService {
	return &TokenService{secret: secret, expiry: expiry, issuer: issuer}
}

func (s *TokenService) GenerateToken(user *domain.User) (string, error) {
	return utils.GenerateJWT(user.UserID, string(user.Role), s.secret, s.expiry, s.issuer)
}
