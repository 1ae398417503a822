package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "boral/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireAppError asserts that err wraps want and renders with want's HTTP code.
func requireAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}

func ptr[T any](v T) *T {
	return &v
}
