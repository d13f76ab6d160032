package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
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

func testFileHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "resume.pdf",
		Size:     182044,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestDocumentService_UploadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and records metadata", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		file := testFileHeader()
		stored := &models.Document{
			ID:        3,
			UserID:    1,
			FileName:  "resume.pdf",
			FilePath:  "/uploads/9f2c.pdf",
			FileSize:  182044,
			MimeType:  "application/pdf",
			DocType:   "resume",
			Notes:     "2024 version",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		storage.On("SaveFile", file).Return("/uploads/9f2c.pdf", nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(d *models.Document) bool {
			return d.UserID == 1 &&
				d.FileName == "resume.pdf" &&
				d.FilePath == "/uploads/9f2c.pdf" &&
				d.FileSize == 182044 &&
				d.MimeType == "application/pdf" &&
				d.DocType == "resume"
		})).Return(int64(3), nil).Once()
		repo.On("GetByID", ctx, int64(3)).Return(stored, nil).Once()

		resp, err := svc.UploadDocument(ctx, 1, file, &dto.CreateDocumentRequest{
			DocType: " resume ",
			Notes:   "2024 version",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "/uploads/9f2c.pdf", resp.FilePath)
		repo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("orphaned file cleaned up when the metadata insert fails", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		file := testFileHeader()
		storage.On("SaveFile", file).Return("/uploads/9f2c.pdf", nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()
		storage.On("DeleteFile", "/uploads/9f2c.pdf").Return(nil).Once()

		resp, err := svc.UploadDocument(ctx, 1, file, &dto.CreateDocumentRequest{DocType: "resume"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, assert.AnError)
		storage.AssertExpectations(t)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		resp, err := svc.UploadDocument(ctx, 1, nil, &dto.CreateDocumentRequest{DocType: "resume"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		storage.AssertNotCalled(t, "SaveFile")
	})

	t.Run("blank doc type rejected before storage", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		resp, err := svc.UploadDocument(ctx, 1, testFileHeader(), &dto.CreateDocumentRequest{DocType: "  "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		storage.AssertNotCalled(t, "SaveFile")
	})
}

func TestDocumentService_GetDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("returns own document", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 1, FileName: "resume.pdf", FilePath: "/uploads/9f2c.pdf"}, nil).Once()

		resp, err := svc.GetDocument(ctx, 1, 3)

		assert.NoError(t, err)
		assert.Equal(t, "resume.pdf", resp.FileName)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's document is forbidden", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 2}, nil).Once()

		resp, err := svc.GetDocument(ctx, 1, 3)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("missing document passes through not found", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrDocumentNotFound).Once()

		resp, err := svc.GetDocument(ctx, 1, 99)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_ListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("passes doc type filter to repository", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetAllByOwner", ctx, int64(1), mock.MatchedBy(func(p repositories.DocumentListParams) bool {
			return p.DocType != nil && *p.DocType == "transcript"
		})).Return([]*models.Document{
			{ID: 4, UserID: 1, FileName: "transcript.pdf", FilePath: "/uploads/t.pdf", DocType: "transcript"},
		}, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 1}, nil).Once()

		resp, err := svc.ListDocuments(ctx, 1, &dto.DocumentFilterRequest{DocType: " transcript "})

		assert.NoError(t, err)
		assert.Len(t, resp.Documents, 1)
		repo.AssertExpectations(t)
	})

	t.Run("blank filter lists everything", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetAllByOwner", ctx, int64(1), mock.MatchedBy(func(p repositories.DocumentListParams) bool {
			return p.DocType == nil
		})).Return([]*models.Document{}, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10}, nil).Once()

		resp, err := svc.ListDocuments(ctx, 1, &dto.DocumentFilterRequest{})

		assert.NoError(t, err)
		assert.Empty(t, resp.Documents)
		repo.AssertExpectations(t)
	})
}

func TestDocumentService_UpdateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("updates metadata, file path untouched", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		current := &models.Document{ID: 3, UserID: 1, FileName: "resume.pdf", FilePath: "/uploads/9f2c.pdf", DocType: "resume"}

		repo.On("GetByID", ctx, int64(3)).Return(current, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(d *models.Document) bool {
			return d.FileName == "resume-2024.pdf" && d.FilePath == "/uploads/9f2c.pdf"
		})).Return(nil).Once()
		repo.On("GetByID", ctx, int64(3)).Return(current, nil).Once()

		_, err := svc.UpdateDocument(ctx, 1, 3, &dto.UpdateDocumentRequest{FileName: strPtr("resume-2024.pdf")})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("blank file name rejected", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 1, FileName: "resume.pdf"}, nil).Once()

		resp, err := svc.UpdateDocument(ctx, 1, 3, &dto.UpdateDocumentRequest{FileName: strPtr("  ")})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 2}, nil).Once()

		resp, err := svc.UpdateDocument(ctx, 1, 3, &dto.UpdateDocumentRequest{Notes: strPtr("hijack")})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes metadata and stored file", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 1, FilePath: "/uploads/9f2c.pdf"}, nil).Once()
		repo.On("Delete", ctx, int64(3)).Return(nil).Once()
		storage.On("DeleteFile", "/uploads/9f2c.pdf").Return(nil).Once()

		assert.NoError(t, svc.DeleteDocument(ctx, 1, 3))
		repo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("file deletion failure does not fail the operation", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 1, FilePath: "/uploads/9f2c.pdf"}, nil).Once()
		repo.On("Delete", ctx, int64(3)).Return(nil).Once()
		storage.On("DeleteFile", "/uploads/9f2c.pdf").Return(assert.AnError).Once()

		assert.NoError(t, svc.DeleteDocument(ctx, 1, 3))
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		storage := new(mockFileStorage)
		svc := NewDocumentService(repo, storage, zerolog.Nop())

		repo.On("GetByID", ctx, int64(3)).
			Return(&models.Document{ID: 3, UserID: 2}, nil).Once()

		assert.ErrorIs(t, svc.DeleteDocument(ctx, 1, 3), apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Delete")
		storage.AssertNotCalled(t, "DeleteFile")
	})
}
