package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecan/gradtrack/internal/app/models"
	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/repositories"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
	"github.com/ecan/gradtrack/internal/pkg/filestorage"
)

// DocumentService handles document metadata and the underlying file
// storage. Like programs, documents are strictly owner-scoped.
type DocumentService struct {
	documentRepo repositories.DocumentRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		storage:      storage,
		logger:       logger,
	}
}

// UploadDocument stores the uploaded file and records its metadata.
func (s *DocumentService) UploadDocument(ctx context.Context, userID int64, file *multipart.FileHeader, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("file is required")
	}

	docType := strings.TrimSpace(req.DocType)
	if docType == "" {
		return nil, apperrors.NewValidationError("document type cannot be blank")
	}

	filePath, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	doc := &models.Document{
		UserID:   userID,
		FileName: file.Filename,
		FilePath: filePath,
		FileSize: file.Size,
		MimeType: file.Header.Get("Content-Type"),
		DocType:  docType,
		Notes:    req.Notes,
	}

	id, err := s.documentRepo.Create(ctx, doc)
	if err != nil {
		// The metadata row failed, so the stored file is an orphan
		if delErr := s.storage.DeleteFile(filePath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", filePath).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}

	created, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := s.toDocumentResponse(created)
	return &resp, nil
}

// GetDocument retrieves a single document owned by the given user.
func (s *DocumentService) GetDocument(ctx context.Context, userID, documentID int64) (*dto.DocumentResponse, error) {
	doc, err := s.getOwnedDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	resp := s.toDocumentResponse(doc)
	return &resp, nil
}

// ListDocuments retrieves the user's documents, optionally filtered by type.
func (s *DocumentService) ListDocuments(ctx context.Context, userID int64, filter *dto.DocumentFilterRequest) (*dto.DocumentListResponse, error) {
	params := repositories.DocumentListParams{
		Page: filter.Page,
		Size: filter.Size,
	}

	if strings.TrimSpace(filter.DocType) != "" {
		docType := strings.TrimSpace(filter.DocType)
		params.DocType = &docType
	}

	docs, pagination, err := s.documentRepo.GetAllByOwner(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, s.toDocumentResponse(d))
	}

	return &dto.DocumentListResponse{
		Documents:  responses,
		Pagination: pagination,
	}, nil
}

// UpdateDocument applies a partial metadata update. The stored file itself
// is immutable; only the display name, type and notes can change.
func (s *DocumentService) UpdateDocument(ctx context.Context, userID, documentID int64, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := s.getOwnedDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	if req.FileName != nil {
		fileName := strings.TrimSpace(*req.FileName)
		if fileName == "" {
			return nil, apperrors.NewValidationError("file name cannot be blank")
		}
		doc.FileName = fileName
	}
	if req.DocType != nil {
		docType := strings.TrimSpace(*req.DocType)
		if docType == "" {
			return nil, apperrors.NewValidationError("document type cannot be blank")
		}
		doc.DocType = docType
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	updated, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	resp := s.toDocumentResponse(updated)
	return &resp, nil
}

// DeleteDocument removes a document and its stored file. Program links
// referencing the document are removed by the database cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	doc, err := s.getOwnedDocument(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return err
	}

	// The metadata row is gone; a leftover file is only a warning
	if err := s.storage.DeleteFile(doc.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("path", doc.FilePath).Msg("Failed to delete stored file")
	}

	return nil
}

func (s *DocumentService) getOwnedDocument(ctx context.Context, userID, documentID int64) (*models.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.UserID != userID {
		return nil, apperrors.NewForbiddenError("you do not have access to this document")
	}

	return doc, nil
}

func (s *DocumentService) toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:        doc.ID,
		FileName:  doc.FileName,
		FilePath:  doc.FilePath,
		FileSize:  doc.FileSize,
		MimeType:  doc.MimeType,
		DocType:   doc.DocType,
		Notes:     doc.Notes,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
	}
}
