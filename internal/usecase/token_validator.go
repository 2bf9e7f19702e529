package usecase

import (
	"adspace-backend/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves the tenant scope for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	if claims.TenantID == uuid.Nil {
		return uuid.Nil, jwt.ErrInvalidToken
	}

	return claims.TenantID, nil
}
