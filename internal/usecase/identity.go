package usecase

import (
	"context"
	"log/slog"
	"time"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/jwt"
)

var (
	// ErrSignInDeclined means the credential could not be turned into an
	// identity. The caller stays signed out; it is not reported as a failure.
	ErrSignInDeclined  = errs.New("sign-in declined")
	ErrTokenGeneration = errs.New("token generation failed")
)

type Session struct {
	Token     string
	ExpiresIn time.Duration
	Identity  user.Identity
}

type IdentityService interface {
	SignInWithGoogle(ctx context.Context, credential string) (*Session, error)
}

type identityServiceImpl struct {
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewIdentityService(jwtService *jwt.Service, logger *slog.Logger) IdentityService {
	return &identityServiceImpl{jwtService: jwtService, logger: logger}
}

// SignInWithGoogle trusts the credential payload as-is; the signature is
// not verified.
func (s *identityServiceImpl) SignInWithGoogle(_ context.Context, credential string) (*Session, error) {
	claims, err := jwt.DecodeGoogleCredential(credential)
	if err != nil {
		s.logger.Debug("Google credential not decodable", slog.String("error", err.Error()))
		return nil, ErrSignInDeclined
	}

	identity, err := user.NewIdentity(claims.Name, claims.Email, claims.Picture)
	if err != nil {
		s.logger.Debug("Google credential has no usable email", slog.String("error", err.Error()))
		return nil, ErrSignInDeclined
	}

	token, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	s.logger.Info("User signed in", slog.String("user_email", identity.Email().Value()))
	return &Session{
		Token:     token,
		ExpiresIn: s.jwtService.TokenDuration(),
		Identity:  identity,
	}, nil
}
