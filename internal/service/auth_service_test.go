package service

import (
	"context"
	"testing"
	"time"

	"bookhive/internal/config"
	"bookhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-that-is-long-enough-0123456789",
		JWTExpiry: time.Hour,
	}
}

func TestLogin_RegistersUnknownID(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 42
	})).Return(nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(repo, testAuthConfig())
	token, user, firstTime, err := svc.Login(context.Background(), 42)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(42), user.ID)
	assert.True(t, firstTime)
	repo.AssertExpectations(t)
}

func TestLogin_ExistingUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(repo, testAuthConfig())
	_, user, firstTime, err := svc.Login(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, firstTime)
	require.NotNil(t, user.LastLogin)
	repo.AssertNotCalled(t, "Create")
}

func TestValidateToken_RoundTrip(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, int64(11)).Return(&models.User{ID: 11}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(repo, testAuthConfig())
	token, _, _, err := svc.Login(context.Background(), 11)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claims.UserID)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&models.User{ID: 1}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	issuer := NewAuthService(repo, testAuthConfig())
	token, _, _, err := issuer.Login(context.Background(), 1)
	require.NoError(t, err)

	other := NewAuthService(new(MockUserRepository), &config.Config{
		JWTSecret: "a-different-secret-also-long-enough-000000",
		JWTExpiry: time.Hour,
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
