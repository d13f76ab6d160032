package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/helpers"
	"github.com/ecan/gradtrack/internal/pkg/logger"
)

// ProgramListParams holds filtering and pagination parameters for listing
// a user's program entries.
type ProgramListParams struct {
	Status *models.ApplicationStatus
	Page   int
	Size   int
}

// ProgramRepository handles database operations for Program.
type ProgramRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction.
	WithTx(tx pgx.Tx) ProgramRepository

	Create(ctx context.Context, program *models.Program) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	GetAllByOwner(ctx context.Context, userID int64, params ProgramListParams) ([]*models.Program, dto.PaginationInfo, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

type programRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db DBTX) ProgramRepository {
	return &programRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *programRepository) WithTx(tx pgx.Tx) ProgramRepository {
	return &programRepository{db: tx, sb: r.sb}
}

const programColumns = "id, user_id, university_name, degree_field, focus_area, portal_url, website, deadline, status, tuition, requirements, notes, created_at, updated_at"

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	err := row.Scan(
		&p.ID, &p.UserID, &p.UniversityName, &p.DegreeField, &p.FocusArea,
		&p.PortalURL, &p.Website, &p.Deadline, &p.Status, &p.Tuition,
		&p.Requirements, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new program entry and returns its id.
func (r *programRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("user_id", "university_name", "degree_field", "focus_area", "portal_url",
			"website", "deadline", "status", "tuition", "requirements", "notes").
		Values(program.UserID, program.UniversityName, program.DegreeField, program.FocusArea,
			program.PortalURL, program.Website, program.Deadline, program.Status,
			program.Tuition, program.Requirements, program.Notes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create program SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single program entry by its id.
func (r *programRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select(programColumns).
		From("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program by ID SQL")
		return nil, err
	}

	return scanProgram(r.db.QueryRow(ctx, sql, args...))
}

// GetAllByOwner retrieves a paginated list of programs for one owner.
// The user_id filter is always applied; no parameter combination can widen it.
func (r *programRepository) GetAllByOwner(ctx context.Context, userID int64, params ProgramListParams) ([]*models.Program, dto.PaginationInfo, error) {
	sqlBuilder := r.sb.Select(programColumns).
		From("programs").
		Where(squirrel.Eq{"user_id": userID})
	countBuilder := r.sb.Select("count(*)").
		From("programs").
		Where(squirrel.Eq{"user_id": userID})

	if params.Status != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"status": *params.Status})
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *params.Status})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count programs SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count programs query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, params.Page, params.Size)

	if totalItems == 0 {
		return []*models.Program{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)

	sqlBuilder = sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list programs SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list programs query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	programs := make([]*models.Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program row")
			return nil, dto.PaginationInfo{}, err
		}
		programs = append(programs, p)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating program rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return programs, pagination, nil
}

// Update overwrites an existing program entry.
func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Update("programs").
		Set("university_name", program.UniversityName).
		Set("degree_field", program.DegreeField).
		Set("focus_area", program.FocusArea).
		Set("portal_url", program.PortalURL).
		Set("website", program.Website).
		Set("deadline", program.Deadline).
		Set("status", program.Status).
		Set("tuition", program.Tuition).
		Set("requirements", program.Requirements).
		Set("notes", program.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": program.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update program SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete removes a program entry by id. Links referencing it cascade.
func (r *programRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete program SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}
