package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outreachkit/prospector/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("campaign", "required"),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error maps to 400",
			err:        fmt.Errorf("creating run: %w", services.NewValidationError("budget_cap_usd", "must be positive")),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "not found maps to 404",
			err:        services.ErrNotFound,
			expectCode: http.StatusNotFound,
		},
		{
			name:       "gate already decided maps to 409",
			err:        services.ErrGateAlreadyDecided,
			expectCode: http.StatusConflict,
		},
		{
			name:       "run not active maps to 409",
			err:        services.ErrRunNotActive,
			expectCode: http.StatusConflict,
		},
		{
			name:       "already exists maps to 409",
			err:        services.ErrAlreadyExists,
			expectCode: http.StatusConflict,
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("connection reset"),
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.expectCode, httpErr.Code)
		})
	}
}
