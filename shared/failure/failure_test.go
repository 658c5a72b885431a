package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"manege/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"bad request", failure.BadRequest(errors.New("broken")), http.StatusBadRequest},
		{"bad request from string", failure.BadRequestFromString("broken"), http.StatusBadRequest},
		{"unauthorized", failure.Unauthorized("no token"), http.StatusUnauthorized},
		{"not found", failure.NotFound("reservation not found"), http.StatusNotFound},
		{"conflict", failure.Conflict("time slot was just taken"), http.StatusConflict},
		{"forbidden", failure.Forbidden("admins only"), http.StatusForbidden},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestGetCodeUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
}

func TestGetCodeWrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("creating reservation: %w", failure.Conflict("slot taken"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
}

func TestNilErrorsAreNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
