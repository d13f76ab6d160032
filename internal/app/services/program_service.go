package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
)

// deadlineLayout is the wire format for application deadlines.
const deadlineLayout = "2006-01-02"

// ProgramService handles program entry operations. Every operation is
// scoped to the owning user: entries belonging to other users behave as
// forbidden, never as shared data.
type ProgramService struct {
	programRepo repositories.ProgramRepository
	logger      zerolog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo repositories.ProgramRepository, logger zerolog.Logger) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		logger:      logger,
	}
}

// CreateProgram creates a new program entry owned by the given user.
func (s *ProgramService) CreateProgram(ctx context.Context, userID int64, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	universityName := strings.TrimSpace(req.UniversityName)
	if universityName == "" {
		return nil, apperrors.NewValidationError("university name cannot be blank")
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	program := &models.Program{
		UserID:         userID,
		UniversityName: universityName,
		DegreeField:    req.DegreeField,
		FocusArea:      req.FocusArea,
		PortalURL:      req.PortalURL,
		Website:        req.Website,
		Deadline:       deadline,
		Status:         models.ParseApplicationStatus(req.Status),
		Tuition:        req.Tuition,
		Requirements:   req.Requirements,
		Notes:          req.Notes,
	}

	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}

	created, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toProgramResponse(created)
	return &resp, nil
}

// GetProgram retrieves a single program entry owned by the given user.
func (s *ProgramService) GetProgram(ctx context.Context, userID, programID int64) (*dto.ProgramResponse, error) {
	program, err := s.getOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	resp := toProgramResponse(program)
	return &resp, nil
}

// ListPrograms retrieves the user's program entries, optionally filtered by
// status. The status filter is parsed leniently, same as on writes.
func (s *ProgramService) ListPrograms(ctx context.Context, userID int64, filter *dto.ProgramFilterRequest) (*dto.ProgramListResponse, error) {
	params := repositories.ProgramListParams{
		Page: filter.Page,
		Size: filter.Size,
	}

	if strings.TrimSpace(filter.Status) != "" {
		status := models.ParseApplicationStatus(filter.Status)
		params.Status = &status
	}

	programs, pagination, err := s.programRepo.GetAllByOwner(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		responses = append(responses, toProgramResponse(p))
	}

	return &dto.ProgramListResponse{
		Programs:   responses,
		Pagination: pagination,
	}, nil
}

// UpdateProgram applies a partial update to a program entry. Nil fields are
// left untouched; non-nil fields overwrite, including with empty values.
func (s *ProgramService) UpdateProgram(ctx context.Context, userID, programID int64, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	program, err := s.getOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	if req.UniversityName != nil {
		universityName := strings.TrimSpace(*req.UniversityName)
		if universityName == "" {
			return nil, apperrors.NewValidationError("university name cannot be blank")
		}
		program.UniversityName = universityName
	}
	if req.DegreeField != nil {
		program.DegreeField = *req.DegreeField
	}
	if req.FocusArea != nil {
		program.FocusArea = *req.FocusArea
	}
	if req.PortalURL != nil {
		program.PortalURL = *req.PortalURL
	}
	if req.Website != nil {
		program.Website = *req.Website
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil {
			return nil, err
		}
		program.Deadline = deadline
	}
	if req.Status != nil {
		program.Status = models.ParseApplicationStatus(*req.Status)
	}
	if req.Tuition != nil {
		program.Tuition = *req.Tuition
	}
	if req.Requirements != nil {
		program.Requirements = *req.Requirements
	}
	if req.Notes != nil {
		program.Notes = *req.Notes
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}

	updated, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, err
	}

	resp := toProgramResponse(updated)
	return &resp, nil
}

// DeleteProgram removes a program entry. Links to documents are removed
// with it; the documents themselves survive.
func (s *ProgramService) DeleteProgram(ctx context.Context, userID, programID int64) error {
	if _, err := s.getOwnedProgram(ctx, userID, programID); err != nil {
		return err
	}

	return s.programRepo.Delete(ctx, programID)
}

// getOwnedProgram loads a program and enforces ownership. An entry that
// exists but belongs to someone else is a permission error, not a missing
// resource.
func (s *ProgramService) getOwnedProgram(ctx context.Context, userID, programID int64) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, err
	}

	if program.UserID != userID {
		return nil, apperrors.NewForbiddenError("you do not have access to this program entry")
	}

	return program, nil
}

// parseDeadline parses an optional YYYY-MM-DD deadline. An empty string
// clears the deadline.
func parseDeadline(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	deadline, err := time.Parse(deadlineLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, apperrors.NewValidationError("deadline must be in YYYY-MM-DD format").
			WithDetails(map[string]interface{}{"deadline": value})
	}

	return &deadline, nil
}

// toProgramResponse maps a program model to its API projection.
func toProgramResponse(program *models.Program) dto.ProgramResponse {
	resp := dto.ProgramResponse{
		ID:             program.ID,
		UniversityName: program.UniversityName,
		DegreeField:    program.DegreeField,
		FocusArea:      program.FocusArea,
		PortalURL:      program.PortalURL,
		Website:        program.Website,
		Status:         string(program.Status),
		StatusLabel:    program.Status.Label(),
		Tuition:        program.Tuition,
		Requirements:   program.Requirements,
		Notes:          program.Notes,
		CreatedAt:      program.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      program.UpdatedAt.Format(time.RFC3339),
	}
	if program.Deadline != nil {
		resp.Deadline = program.Deadline.Format(deadlineLayout)
	}
	return resp
}
