package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService for the single catalog
// administrator configured in admin.username / admin.password_hash.
type AuthServiceImpl struct {
	username     string
	passwordHash string
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl. An empty passwordHash
// disables admin login.
func NewAuthService(
	username string,
	passwordHash string,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log,
	}
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		s.log.Warn().Msg("admin login attempted but no password hash is configured")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Verify the password even for an unknown username so both cases cost
	// the same.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	valid, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !userOK || !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("username", s.username).Msg("admin logged in")
	return token, expiry, nil
}
