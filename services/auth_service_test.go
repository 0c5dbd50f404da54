package services

import (
	"testing"
	"time"

	"gin-todo/models"
	"gin-todo/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func setupAuthService(t *testing.T) (IAuthService, repositories.IUserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	repo := repositories.NewUserRepository(db)
	return NewAuthService(repo, testSecret), repo
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := setupAuthService(t)

	user, token, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	loggedIn, loginToken, err := service.Login("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _ := setupAuthService(t)

	_, _, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)

	_, _, err = service.Login("a@b.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login("nobody@b.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, repo := setupAuthService(t)

	_, _, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)

	_, _, err = service.Register("C", "D", "a@b.com", "another1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// 元のユーザーはそのまま
	user, err := repo.FindByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.FirstName)
}

func TestGetUserFromToken(t *testing.T) {
	service, _ := setupAuthService(t)

	user, token, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)

	resolved, err := service.GetUserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "a@b.com", resolved.Email)
}

func TestGetUserFromTokenRejectsBadSignature(t *testing.T) {
	service, _ := setupAuthService(t)

	_, _, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "some-id",
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(forgedString)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.GetUserFromToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserFromTokenRejectsExpired(t *testing.T) {
	service, _ := setupAuthService(t)

	user, _, err := service.Register("A", "B", "a@b.com", "secret1")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	_, err = service.GetUserFromToken(expiredString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGetUserFromTokenUnknownUser(t *testing.T) {
	service, _ := setupAuthService(t)

	// 署名は正しいがユーザーが存在しないトークン
	token, err := service.CreateToken("missing-id", "ghost@b.com")
	require.NoError(t, err)

	_, err = service.GetUserFromToken(token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
