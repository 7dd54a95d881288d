package admins

import (
	"context"
	"errors"
	"time"

	"user-service/internal/common"
	"user-service/internal/server/auth"
	"user-service/internal/server/config"
)

// Service verifies administrator credentials and issues/validates bearer
// tokens for them.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Authenticate checks username/password against the credential store and, on
// success, returns a signed token and its expiry. Unknown usernames and
// wrong passwords both yield common.ErrorUnauthorized; callers must not be
// able to tell which check failed.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, time.Time, error) {
	admin, err := s.repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", time.Time{}, common.ErrorUnauthorized
		}
		return "", time.Time{}, common.ErrorInternal
	}

	if !auth.CheckPassword(password, admin.PasswordHash) {
		return "", time.Time{}, common.ErrorUnauthorized
	}

	token, expiresAt, err := auth.GenerateToken(admin.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", time.Time{}, common.ErrorInternal
	}

	return token, expiresAt, nil
}

// VerifyToken validates a bearer token string and returns its claims, or
// common.ErrorInvalidToken for every failure mode.
func (s *Service) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.GetClaimsFromToken(tokenString, s.jwtSecret)
}
