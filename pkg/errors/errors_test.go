package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrNotFound, ErrInvalidInput)
	assert.NotEqual(t, ErrNotFound, ErrInternal)
	assert.NotEqual(t, ErrInvalidInput, ErrInternal)
}

func TestAppError_ErrorString_WithWrappedError(t *testing.T) {
	inner := fmt.Errorf("db connection lost")
	appErr := &AppError{Code: "INTERNAL_ERROR", Message: "something broke", Err: inner}
	assert.Equal(t, "INTERNAL_ERROR: something broke: db connection lost", appErr.Error())
}

func TestAppError_ErrorString_WithoutWrappedError(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "image not found"}
	assert.Equal(t, "NOT_FOUND: image not found", appErr.Error())
}

func TestNotFound(t *testing.T) {
	err := NotFound("Product", "abc-123")
	require.NotNil(t, err)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Product with id abc-123 is not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFoundMessage("No one image has been removed")
	assert.Equal(t, "No one image has been removed", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("Images array is empty")
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInvalidInputCause(t *testing.T) {
	cause := errors.New("field 'Images' is required")
	err := InvalidInputCause("Images array is empty", cause)

	assert.Equal(t, "Images array is empty", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, cause)
}

func TestInvalidInputCause_NilCause(t *testing.T) {
	err := InvalidInputCause("bad", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"products\" does not exist")
	err := Internal(cause)
	assert.Equal(t, InternalMessage, err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestInternal_NilCause(t *testing.T) {
	err := Internal(nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", InvalidInput("bad"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("get product: %w", NotFound("Product", "1")), http.StatusNotFound},
		{"wrapped sentinel not found", fmt.Errorf("scan: %w", ErrNotFound), http.StatusNotFound},
		{"wrapped sentinel invalid", fmt.Errorf("decode: %w", ErrInvalidInput), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
