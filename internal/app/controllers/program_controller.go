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

// ProgramController handles program entry operations
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// CreateProgram handles program entry creation
// @Summary Create a program entry
// @Description Creates a new university program entry owned by the authenticated user
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProgramRequest true "Program information"
// @Success 201 {object} dto.APIResponse{data=dto.ProgramResponse} "Program created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.CreateProgram(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// GetProgram retrieves one program entry
// @Summary Get a program entry
// @Description Retrieves a single program entry owned by the authenticated user
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ProgramResponse} "Program retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Program belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	program, err := c.programService.GetProgram(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// ListPrograms retrieves the caller's program entries
// @Summary List program entries
// @Description Retrieves program entries owned by the authenticated user, optionally filtered by status
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Application status filter (lenient, e.g. 'Accepted' or 'ACCEPTED')"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ProgramListResponse} "Programs retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.ProgramFilterRequest{
		Status: ctx.Query("status"),
		Page:   page,
		Size:   size,
	}

	programs, err := c.programService.ListPrograms(ctx, userID, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      programs,
		Timestamp: time.Now(),
	})
}

// UpdateProgram applies a partial update to a program entry
// @Summary Update a program entry
// @Description Partially updates a program entry; omitted fields are left untouched
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgramRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ProgramResponse} "Program updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Program belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [patch]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.UpdateProgram(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// DeleteProgram deletes a program entry
// @Summary Delete a program entry
// @Description Deletes a program entry and its document links; documents themselves are kept
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Program deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Program belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.programService.DeleteProgram(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Program deleted successfully"},
		Timestamp: time.Now(),
	})
}
