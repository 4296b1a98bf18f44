package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/bloomandblossom/florist-backend/pkg/auth"
	"github.com/bloomandblossom/florist-backend/pkg/config"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/security"
)

// Service exposes backoffice authentication.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

// LoginInput holds the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// UserDTO is the authenticated identity returned to clients.
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// LoginResult carries the minted token and its subject.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

// service implements the auth service.
type service struct {
	repo   *Repository
	jwtCfg config.JWTConfig
	logg   *logger.Logger
	now    func() time.Time
}

// NewService constructs an auth service instance.
func NewService(repo *Repository, jwtCfg config.JWTConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("auth repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:   repo,
		jwtCfg: jwtCfg,
		logg:   logg,
		now:    time.Now,
	}, nil
}

// Login verifies credentials and mints a JWT. Unknown usernames and wrong
// passwords produce the same UNAUTHORIZED answer.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, invalidCredentials()
	}

	now := s.now()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "user_id", user.ID.String()), "stamping last login failed")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(s.jwtCfg.ExpirationMinutes) * time.Minute),
		User: UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role.String(),
		},
	}, nil
}

func invalidCredentials() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}
