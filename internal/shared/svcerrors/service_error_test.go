package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ANL_1000", "invalid range", nil),
			wantErr: NewInvalidArgumentError("ANL_1000", "invalid range", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("EVT_9000", nil)),
			wantErr: NewInternalError("EVT_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_StatusAndCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          *ServiceError
		wantStatus   int
		wantCategory string
		wantInternal bool
	}{
		{"invalid argument", NewInvalidArgumentError("X_1", "bad", nil), http.StatusBadRequest, "invalid_argument", false},
		{"unauthenticated", NewUnauthenticatedError("X_2", "no token", nil), http.StatusUnauthorized, "unauthenticated", false},
		{"conflict", NewResourceConflictError("X_3", "dup", nil), http.StatusConflict, "resource_conflict", false},
		{"upstream", NewUpstreamUnavailableError("X_4", "provider down", nil), http.StatusBadGateway, "upstream_unavailable", true},
		{"internal", NewInternalError("X_5", nil), http.StatusInternalServerError, "internal", true},
		{"panic", NewInternalErrorPanic(nil), http.StatusInternalServerError, "internal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
		})
	}
}

func TestServiceError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("summarize: %w", NewUpstreamUnavailableError("ANL_9000", "analytics provider unavailable", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ANL_9000: analytics provider unavailable", NewUpstreamUnavailableError("ANL_9000", "analytics provider unavailable", cause).Error())
}
