package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_CopiesMatchOriginal(t *testing.T) {
	withCause := ErrSeedFailed.WithCause(stderrors.New("connection refused"))
	withDetails := ErrValidationFailed.WithDetails("name is required")

	assert.ErrorIs(t, withCause, ErrSeedFailed)
	assert.ErrorIs(t, fmt.Errorf("seed: %w", withCause), ErrSeedFailed)
	assert.ErrorIs(t, withDetails, ErrValidationFailed)
	assert.NotErrorIs(t, withCause, ErrImportFailed)
}

func TestBaseError_WithCause(t *testing.T) {
	err := ErrImportFailed.WithCause(stderrors.New("bulk write failed"))

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, ErrImportFailed.ErrorCode(), err.ErrorCode())
	assert.Equal(t, ErrImportFailed.Message()+": bulk write failed", err.Message())
	assert.Same(t, ErrImportFailed, ErrImportFailed.WithCause(nil))
}

func TestBaseError_WithDetailsLeavesOriginal(t *testing.T) {
	_ = ErrValidationFailed.WithDetails("slug is required")

	assert.Empty(t, ErrValidationFailed.Details())
}
