package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var appStart = time.Now()

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	store   pinger
	backend string
	log     *zap.Logger
}

func NewHealthCtrl(store pinger, backend string, log *zap.Logger) *HealthCtrl {
	return &HealthCtrl{store: store, backend: backend, log: log}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	storeOK := true
	storeErr := ""
	if h.store == nil {
		storeOK = false
		storeErr = "store is nil"
	} else if err := h.store.Ping(ctx); err != nil {
		storeOK = false
		storeErr = err.Error()
		h.log.Warn("health check: store ping failed", zap.Error(err))
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool   `json:"ok"`
		Backend string `json:"backend,omitempty"`
		Err     string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"store": sub{OK: storeOK, Backend: h.backend, Err: storeErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
