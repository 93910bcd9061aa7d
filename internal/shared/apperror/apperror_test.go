package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"record-viewer/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	err := apperror.Wrap(cause, apperror.ErrInvalidInput)

	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
	assert.Contains(t, err.Error(), "dial tcp: refused")
	assert.Nil(t, apperror.Wrap(nil, apperror.ErrInternal))
}

func TestToHTTP(t *testing.T) {
	t.Run("app error through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("list: %w", apperror.ErrTooManyRequests)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusTooManyRequests, got.Status)
		assert.Equal(t, apperror.CodeTooManyRequests, got.Code)
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "password")
	})
}
