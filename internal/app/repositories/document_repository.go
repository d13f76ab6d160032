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

// DocumentListParams holds filtering and pagination parameters for listing
// a user's documents.
type DocumentListParams struct {
	DocType *string
	Page    int
	Size    int
}

// DocumentRepository handles database operations for Document.
type DocumentRepository interface {
	// WithTx returns a copy of the repository bound to the given transaction.
	WithTx(tx pgx.Tx) DocumentRepository

	Create(ctx context.Context, doc *models.Document) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	GetAllByOwner(ctx context.Context, userID int64, params DocumentListParams) ([]*models.Document, dto.PaginationInfo, error)
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id int64) error
}

type documentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db DBTX) DocumentRepository {
	return &documentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *documentRepository) WithTx(tx pgx.Tx) DocumentRepository {
	return &documentRepository{db: tx, sb: r.sb}
}

const documentColumns = "id, user_id, file_name, file_path, file_size, mime_type, doc_type, notes, created_at, updated_at"

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID, &d.UserID, &d.FileName, &d.FilePath, &d.FileSize,
		&d.MimeType, &d.DocType, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document metadata row and returns its id.
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) (int64, error) {
	sql, args, err := r.sb.Insert("documents").
		Columns("user_id", "file_name", "file_path", "file_size", "mime_type", "doc_type", "notes").
		Values(doc.UserID, doc.FileName, doc.FilePath, doc.FileSize, doc.MimeType, doc.DocType, doc.Notes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create document SQL")
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create document query")
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single document by its id.
func (r *documentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	sql, args, err := r.sb.Select(documentColumns).
		From("documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get document by ID SQL")
		return nil, err
	}

	return scanDocument(r.db.QueryRow(ctx, sql, args...))
}

// GetAllByOwner retrieves a paginated list of documents for one owner.
func (r *documentRepository) GetAllByOwner(ctx context.Context, userID int64, params DocumentListParams) ([]*models.Document, dto.PaginationInfo, error) {
	sqlBuilder := r.sb.Select(documentColumns).
		From("documents").
		Where(squirrel.Eq{"user_id": userID})
	countBuilder := r.sb.Select("count(*)").
		From("documents").
		Where(squirrel.Eq{"user_id": userID})

	if params.DocType != nil && *params.DocType != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"doc_type": *params.DocType})
		countBuilder = countBuilder.Where(squirrel.Eq{"doc_type": *params.DocType})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count documents SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count documents query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, params.Page, params.Size)

	if totalItems == 0 {
		return []*models.Document{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)

	sqlBuilder = sqlBuilder.OrderBy("created_at DESC").Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list documents SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list documents query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	docs := make([]*models.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, dto.PaginationInfo{}, err
		}
		docs = append(docs, d)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating document rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return docs, pagination, nil
}

// Update overwrites mutable document metadata. The storage path and size
// are fixed at upload time.
func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	sql, args, err := r.sb.Update("documents").
		Set("file_name", doc.FileName).
		Set("doc_type", doc.DocType).
		Set("notes", doc.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doc.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update document SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update document query")
		return fmt.Errorf("error updating document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

// Delete removes a document metadata row by id. Links referencing it cascade.
func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete document SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete document query")
		return fmt.Errorf("error deleting document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
