package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct{ err error }

func (f fakeStore) Ping(ctx context.Context) error { return f.err }

func check(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.Health(c))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_OK(t *testing.T) {
	code, body := check(t, NewHealthCtrl(fakeStore{}, "memory", zap.NewNop()))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["status"].(map[string]any)["ok"])
	store := body["checks"].(map[string]any)["store"].(map[string]any)
	assert.Equal(t, "memory", store["backend"])
}

func TestHealth_StoreDown(t *testing.T) {
	code, body := check(t, NewHealthCtrl(fakeStore{err: errors.New("ping: closed")}, "sqlite", zap.NewNop()))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	store := body["checks"].(map[string]any)["store"].(map[string]any)
	assert.Equal(t, "ping: closed", store["err"])
}
