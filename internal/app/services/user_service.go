package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/validation"
)

// UserService handles profile operations for the authenticated user.
type UserService struct {
	userRepo repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the profile of the given user.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile changes the user's display name and email address.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Only guard uniqueness when the address actually changes
	if !strings.EqualFold(user.Email, req.Email) {
		exists, err := s.userRepo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("error checking if email exists: %w", err)
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, name, req.Email); err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = req.Email

	resp := toUserResponse(user)
	return &resp, nil
}
