package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/auth"
	"github.com/ecan/gradtrack/internal/pkg/validation"
)

// AuthService handles registration, login and token lifecycle operations.
type AuthService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}

	if !validation.CompiledPatterns.Email.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}

	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	return nil
}

func (s *AuthService) validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrTokenInvalid
	}
	return nil
}

// Register creates a new user account and returns tokens for the new user.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	user.CreatedAt = time.Now()

	tokens, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *tokens,
		User:  toUserResponse(user),
	}, nil
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	// A missing user and a wrong password are indistinguishable to the caller
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login timestamp")
	}

	tokens, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *tokens,
		User:  toUserResponse(user),
	}, nil
}

// RefreshToken rotates a refresh token: the old one is revoked and a fresh
// pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if err := s.validateToken(refreshToken); err != nil {
		return nil, err
	}

	userID, expiryDate, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	if isRevoked {
		// Replay of a revoked token suggests the token leaked; drop every
		// session of the user
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to revoke user tokens after replay")
		}
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	// Revoking before reissue prevents replay of the old token
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes a refresh token. Revoking an already revoked token is not
// an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.validateToken(refreshToken); err != nil {
		return err
	}

	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// generateTokenResponse creates token response
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// toUserResponse maps a user model to its public projection.
func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		resp.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return resp
}
