package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category application.ErrorCategory
		status   int
		code     string
	}{
		{
			name:     "invalid input",
			err:      application.NewInvalidInputError(errors.New("bad body")),
			category: application.CategoryClientError,
			status:   http.StatusBadRequest,
			code:     application.ErrCodeInvalidInput,
		},
		{
			name:     "wrapped duplicate method",
			err:      application.NewInvalidInputError(domain.NewDuplicatePaymentMethodError("mZysk")),
			category: application.CategoryClientError,
			status:   http.StatusBadRequest,
			code:     application.ErrCodeInvalidInput,
		},
		{
			name:     "bare duplicate method",
			err:      domain.NewDuplicatePaymentMethodError("mZysk"),
			category: application.CategoryClientError,
			status:   http.StatusConflict,
			code:     domain.ErrCodeDuplicatePaymentMethod,
		},
		{
			name:     "invalid record",
			err:      fmt.Errorf("read: %w", domain.NewInvalidRecordError("orders", 2, errors.New("x"))),
			category: application.CategoryClientError,
			status:   http.StatusBadRequest,
			code:     domain.ErrCodeInvalidRecord,
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("allocate: %w", context.DeadlineExceeded),
			category: application.CategoryTransient,
			status:   http.StatusRequestTimeout,
			code:     application.ErrCodeTimeout,
		},
		{
			name:     "internal",
			err:      application.NewInternalError(errors.New("boom")),
			category: application.CategoryInfrastructure,
			status:   http.StatusInternalServerError,
			code:     application.ErrCodeInternal,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			category: application.CategoryInfrastructure,
			status:   http.StatusInternalServerError,
			code:     application.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, application.CategorizeError(tt.err))
			assert.Equal(t, tt.status, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, application.ToErrorCode(tt.err))
		})
	}

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
		assert.Empty(t, application.CategorizeError(nil))
	})
}
