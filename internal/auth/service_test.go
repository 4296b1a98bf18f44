package auth

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgauth "github.com/bloomandblossom/florist-backend/pkg/auth"
	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
	"github.com/bloomandblossom/florist-backend/pkg/security"
)

var testJWTCfg = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "florist-backend",
	ExpirationMinutes: 60,
}

var testPasswordCfg = config.PasswordConfig{
	ArgonMemoryKB:    32768,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'admin',
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	return db
}

func seedUser(t *testing.T, repo *Repository, username, password string) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password, testPasswordCfg)
	require.NoError(t, err)

	user, err := repo.CreateUser(context.Background(), &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         enums.RoleAdmin,
	})
	require.NoError(t, err)
	return user
}

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()

	repo := NewRepository(setupAuthTestDB(t))
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(repo, testJWTCfg, logg)
	require.NoError(t, err)
	return svc, repo
}

func TestLoginMintsVerifiableToken(t *testing.T) {
	svc, repo := newTestService(t)
	user := seedUser(t, repo, "admin", "correct-horse")

	result, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, string(enums.RoleAdmin), result.User.Role)

	claims, err := pkgauth.ParseAccessToken(testJWTCfg, result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, enums.RoleAdmin, claims.Role)
}

func TestLoginStampsLastLogin(t *testing.T) {
	svc, repo := newTestService(t)
	user := seedUser(t, repo, "admin", "correct-horse")

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	reloaded, err := repo.FindByUsername(context.Background(), user.Username)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastLoginAt)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "admin", "correct-horse")

	_, unknownErr := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "whatever"})
	_, badPassErr := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})

	for _, err := range []error{unknownErr, badPassErr} {
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
		assert.Equal(t, "invalid credentials", typed.Message())
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: " ", Password: ""})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
