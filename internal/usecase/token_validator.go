package usecase

import (
	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	return user.NewIdentity(claims.Name, claims.Email, claims.Picture)
}
