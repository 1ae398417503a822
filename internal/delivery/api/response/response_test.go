package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "boral/internal/domain/errors"
	"boral/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_DropsDetailsForSensitiveStatuses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusServiceUnavailable} {
		c, rec := newTestContext()
		require.NoError(t, Error(c, status, "CODE", "msg", map[string]string{"field": "secret"}))

		errBody := decode(t, rec)["error"].(map[string]any)
		assert.NotContains(t, errBody, "details", "status %d", status)
	}

	c, rec := newTestContext()
	require.NoError(t, Error(c, http.StatusBadRequest, "CODE", "msg", map[string]string{"field": "required"}))
	errBody := decode(t, rec)["error"].(map[string]any)
	assert.Equal(t, map[string]any{"field": "required"}, errBody["details"])
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is rendered", func(t *testing.T) {
		c, rec := newTestContext()
		err := errors.Wrap(domainerrors.ErrStoreNotFound, "load store")

		require.NoError(t, HandleAppError(c, err))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "STORE_NOT_FOUND", decode(t, rec)["error"].(map[string]any)["code"])
	})

	t.Run("plain error is passed on", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, errors.New("boom"))
		require.Error(t, err)
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	})
}
