package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/dberrors"
	"github.com/ecan/gradtrack/internal/pkg/logger"
)

// ProgramDocumentRepository handles database operations for the links
// between programs and documents.
type ProgramDocumentRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction.
	WithTx(tx pgx.Tx) ProgramDocumentRepository

	Create(ctx context.Context, link *models.ProgramDocument) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ProgramDocument, error)
	// GetByIDWithOwner retrieves a link together with the owning user of its
	// program, derived through a join.
	GetByIDWithOwner(ctx context.Context, id int64) (*models.ProgramDocument, int64, error)
	GetAllByProgram(ctx context.Context, programID int64) ([]*models.ProgramDocument, error)
	ExistsForPair(ctx context.Context, programID, documentID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type programDocumentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewProgramDocumentRepository creates a new ProgramDocumentRepository
func NewProgramDocumentRepository(db DBTX) ProgramDocumentRepository {
	return &programDocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *programDocumentRepository) WithTx(tx pgx.Tx) ProgramDocumentRepository {
	return &programDocumentRepository{db: tx, sb: r.sb}
}

const programDocumentColumns = "id, program_id, document_id, usage_notes, created_at"

func scanProgramDocument(row pgx.Row) (*models.ProgramDocument, error) {
	var link models.ProgramDocument
	err := row.Scan(&link.ID, &link.ProgramID, &link.DocumentID, &link.UsageNotes, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramDocumentNotFound
		}
		return nil, err
	}
	return &link, nil
}

// Create inserts a new program-document link and returns its id. Constraint
// violations are translated into domain errors: the unique pair constraint
// means the document is already attached, and a foreign key violation means
// one of the endpoints disappeared concurrently.
func (r *programDocumentRepository) Create(ctx context.Context, link *models.ProgramDocument) (int64, error) {
	sql, args, err := r.sb.Insert("program_documents").
		Columns("program_id", "document_id", "usage_notes").
		Values(link.ProgramID, link.DocumentID, link.UsageNotes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create program document link SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDocumentAlreadyLinked
		}
		if dberrors.IsForeignKeyViolationOnConstraint(err, "program_documents_program_id_fkey") {
			return 0, apperrors.ErrProgramNotFound
		}
		if dberrors.IsForeignKeyViolationOnConstraint(err, "program_documents_document_id_fkey") {
			return 0, apperrors.ErrDocumentNotFound
		}
		// Constraint names can drift; any other FK violation still means a
		// referenced row disappeared under the insert
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create program document link query")
		return 0, fmt.Errorf("error creating program document link: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single link by its id.
func (r *programDocumentRepository) GetByID(ctx context.Context, id int64) (*models.ProgramDocument, error) {
	sql, args, err := r.sb.Select(programDocumentColumns).
		From("program_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program document link SQL")
		return nil, err
	}

	return scanProgramDocument(r.db.QueryRow(ctx, sql, args...))
}

// GetByIDWithOwner retrieves a link and the owner of its program in one query.
func (r *programDocumentRepository) GetByIDWithOwner(ctx context.Context, id int64) (*models.ProgramDocument, int64, error) {
	sql, args, err := r.sb.Select(
		"pd.id", "pd.program_id", "pd.document_id", "pd.usage_notes", "pd.created_at", "p.user_id").
		From("program_documents pd").
		Join("programs p ON p.id = pd.program_id").
		Where(squirrel.Eq{"pd.id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program document link with owner SQL")
		return nil, 0, err
	}

	var link models.ProgramDocument
	var ownerID int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&link.ID, &link.ProgramID, &link.DocumentID, &link.UsageNotes, &link.CreatedAt, &ownerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperrors.ErrProgramDocumentNotFound
		}
		logger.Error().Err(err).Msg("Error executing get program document link with owner query")
		return nil, 0, err
	}

	return &link, ownerID, nil
}

// GetAllByProgram retrieves every link attached to one program.
func (r *programDocumentRepository) GetAllByProgram(ctx context.Context, programID int64) ([]*models.ProgramDocument, error) {
	sql, args, err := r.sb.Select(programDocumentColumns).
		From("program_documents").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list program document links SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list program document links query")
		return nil, err
	}
	defer rows.Close()

	links := make([]*models.ProgramDocument, 0)
	for rows.Next() {
		link, err := scanProgramDocument(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program document link row")
			return nil, err
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating program document link rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return links, nil
}

// ExistsForPair reports whether a link already exists for the pair.
func (r *programDocumentRepository) ExistsForPair(ctx context.Context, programID, documentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("program_documents").
		Where(squirrel.Eq{"program_id": programID, "document_id": documentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building link exists SQL")
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error executing link exists query")
		return false, err
	}

	return true, nil
}

// Delete removes a link by id.
func (r *programDocumentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("program_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete program document link SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete program document link query")
		return fmt.Errorf("error deleting program document link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramDocumentNotFound
	}

	return nil
}
