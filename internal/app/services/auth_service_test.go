package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "gradtrack.test",
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and returns token pair", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("EmailExists", ctx, "alice@example.com").Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			// The service must never persist the plaintext password
			return u.Name == "Alice Chen" && u.Email == "alice@example.com" && u.Password != "pw123456"
		})).Return(int64(1), nil).Once()
		tokenRepo.On("CreateToken", ctx, mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "  Alice Chen  ",
			Email:    "alice@example.com",
			Password: "pw123456",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.User.ID)
		assert.Equal(t, "Alice Chen", resp.User.Name)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("EmailExists", ctx, "alice@example.com").Return(true, nil).Once()

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Alice Chen",
			Email:    "alice@example.com",
			Password: "pw123456",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Alice Chen",
			Email:    "not-an-email",
			Password: "pw123456",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
		userRepo.AssertNotCalled(t, "EmailExists")
	})

	t.Run("short password rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Name:     "Alice Chen",
			Email:    "alice@example.com",
			Password: "short",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := auth.HashPassword("pw123456")
	assert.NoError(t, err)

	user := &models.User{
		ID:        1,
		Name:      "Alice Chen",
		Email:     "alice@example.com",
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil).Once()
		userRepo.On("UpdateLastLogin", ctx, int64(1)).Return(nil).Once()
		tokenRepo.On("CreateToken", ctx, mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "pw123456"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.Equal(t, "alice@example.com", resp.User.Email)
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		tokenRepo.AssertNotCalled(t, "CreateToken")
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "pw123456"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, assert.AnError).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "pw123456"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("failed last login update does not block login", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil).Once()
		userRepo.On("UpdateLastLogin", ctx, int64(1)).Return(assert.AnError).Once()
		tokenRepo.On("CreateToken", ctx, mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "pw123456"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	user := &models.User{ID: 1, Name: "Alice Chen", Email: "alice@example.com", CreatedAt: time.Now()}

	t.Run("rotates a valid refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		tokenRepo.On("GetTokenByValue", ctx, "old-refresh-token").
			Return(int64(1), time.Now().Add(time.Hour), false, nil).Once()
		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil).Once()
		tokenRepo.On("RevokeToken", ctx, "old-refresh-token").Return(nil).Once()
		tokenRepo.On("CreateToken", ctx, mock.MatchedBy(func(token string) bool {
			return token != "" && token != "old-refresh-token"
		}), int64(1), mock.Anything).Return(nil).Once()

		resp, err := svc.RefreshToken(ctx, "old-refresh-token")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEqual(t, "old-refresh-token", resp.RefreshToken)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("expired token is revoked and rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		tokenRepo.On("GetTokenByValue", ctx, "stale-token").
			Return(int64(1), time.Now().Add(-time.Minute), false, nil).Once()
		tokenRepo.On("RevokeToken", ctx, "stale-token").Return(nil).Once()

		resp, err := svc.RefreshToken(ctx, "stale-token")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("revoked token replay drops every session", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		tokenRepo.On("GetTokenByValue", ctx, "revoked-token").
			Return(int64(1), time.Now().Add(time.Hour), true, nil).Once()
		tokenRepo.On("RevokeAllUserTokens", ctx, int64(1)).Return(nil).Once()

		resp, err := svc.RefreshToken(ctx, "revoked-token")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
		userRepo.AssertNotCalled(t, "GetByID")
		tokenRepo.AssertExpectations(t)
	})

	t.Run("unknown token passes through not found", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		tokenRepo.On("GetTokenByValue", ctx, "unknown-token").
			Return(int64(0), time.Time{}, false, apperrors.ErrTokenNotFound).Once()

		resp, err := svc.RefreshToken(ctx, "unknown-token")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("blank token rejected without a lookup", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		resp, err := svc.RefreshToken(ctx, "   ")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		tokenRepo.AssertNotCalled(t, "GetTokenByValue")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		tokenRepo.On("RevokeToken", ctx, "refresh-token").Return(nil).Once()

		assert.NoError(t, svc.Logout(ctx, "refresh-token"))
		tokenRepo.AssertExpectations(t)
	})

	t.Run("blank token rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		tokenRepo := new(mockTokenRepo)
		svc := NewAuthService(userRepo, tokenRepo, newTestJWTService(), zerolog.Nop())

		assert.ErrorIs(t, svc.Logout(ctx, ""), apperrors.ErrTokenInvalid)
		tokenRepo.AssertNotCalled(t, "RevokeToken")
	})
}
