package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/services"
	"github.com/ecan/gradtrack/internal/middleware"
	"github.com/ecan/gradtrack/internal/pkg/helpers"
)

// DocumentController handles document upload and metadata operations
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// UploadDocument handles a multipart document upload
// @Summary Upload a document
// @Description Stores an uploaded file and records its metadata for the authenticated user
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param docType formData string true "Document type (resume, transcript, ...)"
// @Param notes formData string false "Free-form notes"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse} "Document uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")
		errorDetail = errorDetail.WithDetails("Request must contain a 'file' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	doc, err := c.documentService.UploadDocument(ctx, userID, file, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      doc,
		Timestamp: time.Now(),
	})
}

// GetDocument retrieves one document
// @Summary Get a document
// @Description Retrieves metadata for a single document owned by the authenticated user
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid document ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Document belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id} [get]
func (c *DocumentController) GetDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	doc, err := c.documentService.GetDocument(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      doc,
		Timestamp: time.Now(),
	})
}

// ListDocuments retrieves the caller's documents
// @Summary List documents
// @Description Retrieves documents owned by the authenticated user, optionally filtered by type
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param docType query string false "Document type filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.DocumentListResponse} "Documents retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.DocumentFilterRequest{
		DocType: ctx.Query("docType"),
		Page:    page,
		Size:    size,
	}

	docs, err := c.documentService.ListDocuments(ctx, userID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docs,
		Timestamp: time.Now(),
	})
}

// UpdateDocument applies a partial metadata update
// @Summary Update document metadata
// @Description Partially updates document metadata; the stored file is immutable
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID" Format(int64) minimum(1)
// @Param request body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Document belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id} [patch]
func (c *DocumentController) UpdateDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	doc, err := c.documentService.UpdateDocument(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      doc,
		Timestamp: time.Now(),
	})
}

// DeleteDocument deletes a document and its stored file
// @Summary Delete a document
// @Description Deletes a document, its stored file and any program links referencing it
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Document deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid document ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Document belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.documentService.DeleteDocument(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Document deleted successfully"},
		Timestamp: time.Now(),
	})
}
