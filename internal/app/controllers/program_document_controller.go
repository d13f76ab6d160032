package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/app/services"
	"github.com/ecan/gradtrack/internal/middleware"
)

// ProgramDocumentController handles the links between programs and documents
type ProgramDocumentController struct {
	linkService *services.ProgramDocumentService
}

// NewProgramDocumentController creates a new ProgramDocumentController
func NewProgramDocumentController(linkService *services.ProgramDocumentService) *ProgramDocumentController {
	return &ProgramDocumentController{
		linkService: linkService,
	}
}

// LinkDocument attaches a document to a program
// @Summary Link a document to a program
// @Description Attaches one of the user's documents to one of their program entries
// @Tags program-documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.LinkDocumentRequest true "Document to link"
// @Success 201 {object} dto.APIResponse{data=dto.ProgramDocumentResponse} "Document linked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Program or document belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Program or document not found"
// @Failure 409 {object} dto.ErrorResponse "Document already linked to this program"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id}/documents [post]
func (c *ProgramDocumentController) LinkDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	programID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LinkDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	link, err := c.linkService.LinkDocument(ctx, userID, programID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      link,
		Timestamp: time.Now(),
	})
}

// ListLinks lists the document links of a program
// @Summary List program document links
// @Description Retrieves the document links of one program entry, newest first
// @Tags program-documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProgramDocumentListResponse} "Links retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Program belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id}/documents [get]
func (c *ProgramDocumentController) ListLinks(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	programID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	links, err := c.linkService.ListLinks(ctx, userID, programID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      links,
		Timestamp: time.Now(),
	})
}

// UnlinkDocument removes a program document link
// @Summary Unlink a document from a program
// @Description Removes a link by its id; the document itself is kept
// @Tags program-documents
// @Produce json
// @Security BearerAuth
// @Param linkId path int true "Link ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Link removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid link ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Linked program belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /program-documents/{linkId} [delete]
func (c *ProgramDocumentController) UnlinkDocument(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	linkID, ok := parseIDParam(ctx, "linkId")
	if !ok {
		return
	}

	if err := c.linkService.UnlinkDocument(ctx, userID, linkID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Document unlinked successfully"},
		Timestamp: time.Now(),
	})
}
