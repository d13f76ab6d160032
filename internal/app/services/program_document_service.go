package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/db"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
)

// TxManager runs a function inside a database transaction. *db.PostgresDB
// satisfies it; tests substitute a pass-through.
type TxManager interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// ProgramDocumentService manages the links between program entries and
// documents. Linking demands ownership of both endpoints; unlinking only
// checks the program side, since the link is reachable through the program.
type ProgramDocumentService struct {
	programRepo  repositories.ProgramRepository
	documentRepo repositories.DocumentRepository
	linkRepo     repositories.ProgramDocumentRepository
	txManager    TxManager
	logger       zerolog.Logger
}

// NewProgramDocumentService creates a new ProgramDocumentService
func NewProgramDocumentService(
	programRepo repositories.ProgramRepository,
	documentRepo repositories.DocumentRepository,
	linkRepo repositories.ProgramDocumentRepository,
	txManager TxManager,
	logger zerolog.Logger,
) *ProgramDocumentService {
	return &ProgramDocumentService{
		programRepo:  programRepo,
		documentRepo: documentRepo,
		linkRepo:     linkRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// LinkDocument attaches a document to a program. Both the program and the
// document must belong to the caller, and a pair can be linked only once.
func (s *ProgramDocumentService) LinkDocument(ctx context.Context, userID, programID int64, req *dto.LinkDocumentRequest) (*dto.ProgramDocumentResponse, error) {
	var created *models.ProgramDocument

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		programRepo := s.programRepo.WithTx(tx)
		documentRepo := s.documentRepo.WithTx(tx)
		linkRepo := s.linkRepo.WithTx(tx)

		program, err := programRepo.GetByID(ctx, programID)
		if err != nil {
			return err
		}
		if program.UserID != userID {
			return apperrors.NewForbiddenError("you do not have access to this program entry")
		}

		document, err := documentRepo.GetByID(ctx, req.DocumentID)
		if err != nil {
			return err
		}
		if document.UserID != userID {
			return apperrors.NewForbiddenError("you do not have access to this document")
		}

		// The unique constraint is the backstop for concurrent linkers
		exists, err := linkRepo.ExistsForPair(ctx, programID, req.DocumentID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDocumentAlreadyLinked
		}

		link := &models.ProgramDocument{
			ProgramID:  programID,
			DocumentID: req.DocumentID,
			UsageNotes: req.UsageNotes,
		}

		id, err := linkRepo.Create(ctx, link)
		if err != nil {
			return err
		}

		created, err = linkRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := toProgramDocumentResponse(created)
	return &resp, nil
}

// ListLinks lists the document links of one program, newest first. The
// ownership check and the link read share one transaction so the list
// reflects a single snapshot of the program.
func (s *ProgramDocumentService) ListLinks(ctx context.Context, userID, programID int64) (*dto.ProgramDocumentListResponse, error) {
	var links []*models.ProgramDocument

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		program, err := s.programRepo.WithTx(tx).GetByID(ctx, programID)
		if err != nil {
			return err
		}
		if program.UserID != userID {
			return apperrors.NewForbiddenError("you do not have access to this program entry")
		}

		links, err = s.linkRepo.WithTx(tx).GetAllByProgram(ctx, programID)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProgramDocumentResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, toProgramDocumentResponse(link))
	}

	return &dto.ProgramDocumentListResponse{Links: responses}, nil
}

// UnlinkDocument removes a link by its id. Ownership is derived from the
// linked program; the document side is not consulted.
func (s *ProgramDocumentService) UnlinkDocument(ctx context.Context, userID, linkID int64) error {
	return s.txManager.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		linkRepo := s.linkRepo.WithTx(tx)

		_, ownerID, err := linkRepo.GetByIDWithOwner(ctx, linkID)
		if err != nil {
			return err
		}

		if ownerID != userID {
			return apperrors.NewForbiddenError("you do not have access to this link")
		}

		return linkRepo.Delete(ctx, linkID)
	})
}

func toProgramDocumentResponse(link *models.ProgramDocument) dto.ProgramDocumentResponse {
	return dto.ProgramDocumentResponse{
		ID:         link.ID,
		ProgramID:  link.ProgramID,
		DocumentID: link.DocumentID,
		UsageNotes: link.UsageNotes,
		CreatedAt:  link.CreatedAt.Format(time.RFC3339),
	}
}
