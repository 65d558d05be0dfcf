package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found resource", NotFound("installer"), http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("service request")), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", Conflict("orgNumber", "org number already registered"), http.StatusBadRequest, "CONFLICT"},
		{"validation", Invalid("email", "must be a valid email"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"deactivated", ErrAccountDeactivated, http.StatusForbidden, "ACCOUNT_DEACTIVATED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"reset token", ErrInvalidResetToken, http.StatusBadRequest, "INVALID_RESET_TOKEN"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("dial tcp 10.0.0.1:3306: connection refused"))
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestMapErrorToHTTP_ValidationFields(t *testing.T) {
	httpErr := MapErrorToHTTP(&ValidationError{Fields: map[string]string{"phone": "required", "city": "required"}})
	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "required", resp.Fields["phone"])
	assert.Equal(t, "validation failed: city: required, phone: required", resp.Error)
}
