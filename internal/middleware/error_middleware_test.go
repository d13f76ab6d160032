package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ecan/gradtrack/internal/app/models/dto"
	"github.com/ecan/gradtrack/internal/pkg/apperrors"
)

func performHandledError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "program not found", err: apperrors.ErrProgramNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "document not found", err: apperrors.ErrDocumentNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "link not found", err: apperrors.ErrProgramDocumentNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "permission denied", err: apperrors.NewForbiddenError("not yours"), wantStatus: 403, wantCode: dto.ErrorCodeForbidden},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "expired token", err: apperrors.ErrTokenExpired, wantStatus: 401, wantCode: dto.ErrorCodeExpiredToken},
		{name: "revoked token", err: apperrors.ErrTokenRevoked, wantStatus: 401, wantCode: dto.ErrorCodeInvalidToken},
		{name: "validation failure", err: fmt.Errorf("%w: deadline must be in YYYY-MM-DD format", apperrors.ErrValidationFailed), wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "invalid email", err: apperrors.ErrInvalidEmail, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "email taken", err: apperrors.ErrEmailAlreadyExists, wantStatus: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "document already linked", err: apperrors.ErrDocumentAlreadyLinked, wantStatus: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "generic conflict", err: apperrors.ErrConflict, wantStatus: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "dangling reference", err: apperrors.ErrResourceNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "unknown error becomes opaque 500", err: fmt.Errorf("pq: connection reset"), wantStatus: 500, wantCode: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := performHandledError(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIError_ValidationDetailsExposed(t *testing.T) {
	err := apperrors.NewValidationError("university name cannot be blank")
	_, body := performHandledError(t, err)

	assert.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "university name cannot be blank")
}

func TestHandleAPIError_ValidationFieldDetailsExposed(t *testing.T) {
	err := apperrors.NewValidationError("deadline must be in YYYY-MM-DD format").
		WithDetails(map[string]interface{}{"deadline": "15/12/2025"})
	w, body := performHandledError(t, err)

	assert.Equal(t, 400, w.Code)
	details, ok := body.Error.Details.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "deadline must be in YYYY-MM-DD format", details["message"])
	assert.Equal(t, "15/12/2025", details["deadline"])
}

func TestHandleAPIError_InternalDetailsHidden(t *testing.T) {
	_, body := performHandledError(t, fmt.Errorf("password hash mismatch for row 42"))

	assert.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}
