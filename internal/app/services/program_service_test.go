package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
)

func strPtr(s string) *string {
	return &s
}

func TestProgramService_CreateProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("creates entry with lenient status parsing", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		deadline := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
		stored := &models.Program{
			ID:             7,
			UserID:         1,
			UniversityName: "MIT",
			DegreeField:    "Computer Science",
			Deadline:       &deadline,
			Status:         models.StatusInProgress,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		repo.On("Create", ctx, mock.MatchedBy(func(p *models.Program) bool {
			return p.UserID == 1 &&
				p.UniversityName == "MIT" &&
				p.Status == models.StatusInProgress &&
				p.Deadline != nil && p.Deadline.Equal(deadline)
		})).Return(int64(7), nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()

		resp, err := svc.CreateProgram(ctx, 1, &dto.CreateProgramRequest{
			UniversityName: "  MIT  ",
			DegreeField:    "Computer Science",
			Deadline:       "2025-12-15",
			Status:         "in progress",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
		assert.Equal(t, "In Progress", resp.StatusLabel)
		assert.Equal(t, "2025-12-15", resp.Deadline)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status coerces to other", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		stored := &models.Program{ID: 8, UserID: 1, UniversityName: "ETH", Status: models.StatusOther}
		repo.On("Create", ctx, mock.MatchedBy(func(p *models.Program) bool {
			return p.Status == models.StatusOther
		})).Return(int64(8), nil).Once()
		repo.On("GetByID", ctx, int64(8)).Return(stored, nil).Once()

		resp, err := svc.CreateProgram(ctx, 1, &dto.CreateProgramRequest{
			UniversityName: "ETH",
			Status:         "Waitlisted",
		})

		assert.NoError(t, err)
		assert.Equal(t, "OTHER", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("blank university name rejected", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		resp, err := svc.CreateProgram(ctx, 1, &dto.CreateProgramRequest{UniversityName: "   "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("malformed deadline rejected", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		resp, err := svc.CreateProgram(ctx, 1, &dto.CreateProgramRequest{
			UniversityName: "MIT",
			Deadline:       "15/12/2025",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestProgramService_GetProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("returns own entry", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 1, UniversityName: "MIT", Status: models.StatusApplied}, nil).Once()

		resp, err := svc.GetProgram(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, "MIT", resp.UniversityName)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's entry is forbidden", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 2, Status: models.StatusApplied}, nil).Once()

		resp, err := svc.GetProgram(ctx, 1, 7)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertExpectations(t)
	})

	t.Run("missing entry passes through not found", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrProgramNotFound).Once()

		resp, err := svc.GetProgram(ctx, 1, 99)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)
		repo.AssertExpectations(t)
	})
}

func TestProgramService_ListPrograms(t *testing.T) {
	ctx := context.Background()

	t.Run("passes lenient status filter to repository", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetAllByOwner", ctx, int64(1), mock.MatchedBy(func(p repositories.ProgramListParams) bool {
			return p.Status != nil && *p.Status == models.StatusAccepted && p.Page == 2 && p.Size == 5
		})).Return([]*models.Program{
			{ID: 7, UserID: 1, UniversityName: "MIT", Status: models.StatusAccepted},
		}, dto.PaginationInfo{CurrentPage: 2, TotalPages: 2, PageSize: 5, TotalItems: 6}, nil).Once()

		resp, err := svc.ListPrograms(ctx, 1, &dto.ProgramFilterRequest{Status: "accepted", Page: 2, Size: 5})

		assert.NoError(t, err)
		assert.Len(t, resp.Programs, 1)
		assert.Equal(t, int64(6), resp.Pagination.TotalItems)
		repo.AssertExpectations(t)
	})

	t.Run("blank status means no filter", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetAllByOwner", ctx, int64(1), mock.MatchedBy(func(p repositories.ProgramListParams) bool {
			return p.Status == nil
		})).Return([]*models.Program{}, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10}, nil).Once()

		resp, err := svc.ListPrograms(ctx, 1, &dto.ProgramFilterRequest{Status: "  "})

		assert.NoError(t, err)
		assert.Empty(t, resp.Programs)
		repo.AssertExpectations(t)
	})
}

func TestProgramService_UpdateProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("nil fields untouched, provided fields overwritten", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		deadline := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
		current := &models.Program{
			ID:             7,
			UserID:         1,
			UniversityName: "MIT",
			DegreeField:    "Computer Science",
			Deadline:       &deadline,
			Status:         models.StatusInProgress,
			Notes:          "keep me",
		}

		repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(p *models.Program) bool {
			return p.UniversityName == "MIT" &&
				p.DegreeField == "Computer Science" &&
				p.Notes == "keep me" &&
				p.Status == models.StatusApplied
		})).Return(nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()

		_, err := svc.UpdateProgram(ctx, 1, 7, &dto.UpdateProgramRequest{Status: strPtr("Applied")})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty deadline clears the stored one", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		deadline := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
		current := &models.Program{ID: 7, UserID: 1, UniversityName: "MIT", Deadline: &deadline, Status: models.StatusApplied}

		repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(p *models.Program) bool {
			return p.Deadline == nil
		})).Return(nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()

		_, err := svc.UpdateProgram(ctx, 1, 7, &dto.UpdateProgramRequest{Deadline: strPtr("")})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("blank university name rejected", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 1, UniversityName: "MIT", Status: models.StatusApplied}, nil).Once()

		resp, err := svc.UpdateProgram(ctx, 1, 7, &dto.UpdateProgramRequest{UniversityName: strPtr("  ")})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("foreign owner is forbidden before any write", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 2, Status: models.StatusApplied}, nil).Once()

		resp, err := svc.UpdateProgram(ctx, 1, 7, &dto.UpdateProgramRequest{Notes: strPtr("hijack")})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestProgramService_DeleteProgram(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes own entry", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 1, Status: models.StatusApplied}, nil).Once()
		repo.On("Delete", ctx, int64(7)).Return(nil).Once()

		assert.NoError(t, svc.DeleteProgram(ctx, 1, 7))
		repo.AssertExpectations(t)
	})

	t.Run("delete error propagates", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repoErr := errors.New("connection reset")
		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 1, Status: models.StatusApplied}, nil).Once()
		repo.On("Delete", ctx, int64(7)).Return(repoErr).Once()

		assert.ErrorIs(t, svc.DeleteProgram(ctx, 1, 7), repoErr)
		repo.AssertExpectations(t)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		repo := new(mockProgramRepo)
		svc := NewProgramService(repo, zerolog.Nop())

		repo.On("GetByID", ctx, int64(7)).
			Return(&models.Program{ID: 7, UserID: 2, Status: models.StatusApplied}, nil).Once()

		assert.ErrorIs(t, svc.DeleteProgram(ctx, 1, 7), apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Delete")
	})
}
