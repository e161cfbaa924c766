// Package handlers implements the management API endpoint handlers.
//
// Endpoints:
//   - GET /api/v1/health   - liveness (includes journal connectivity when enabled)
//   - GET /api/v1/stats    - runtime and monitor statistics
//   - GET /api/v1/baseline - current baseline snapshot
//   - GET /api/v1/events   - recent journaled change events
//
// All endpoints support optional API key authentication via the
// X-API-Key header. The API is bound to localhost by default; do not
// expose it to untrusted networks without a key.
//
// @title dnswatch Management API
// @version 1.0
// @description REST API for inspecting the dnswatch DNS record monitor.
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rjongens/dnswatch/internal/config"
	"github.com/rjongens/dnswatch/internal/journal"
	"github.com/rjongens/dnswatch/internal/monitor"
)

// StatusFunc returns the monitor runner's current counters.
type StatusFunc func() monitor.Status

// BaselineFunc returns a copy of the current baseline snapshot; false
// before the first successful check cycle.
type BaselineFunc func() (monitor.Snapshot, bool)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *journal.DB // nil when journaling is disabled
	logger    *slog.Logger
	startTime time.Time

	mu         sync.RWMutex
	statusFn   StatusFunc
	baselineFn BaselineFunc
}

// New creates a Handler. db may be nil when journaling is disabled.
func New(cfg *config.Config, db *journal.DB, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// SetStatusFunc wires the monitor's status source (set after the runner
// is constructed).
func (h *Handler) SetStatusFunc(fn StatusFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statusFn = fn
}

func (h *Handler) getStatusFunc() StatusFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.statusFn
}

// SetBaselineFunc wires the monitor's baseline source.
func (h *Handler) SetBaselineFunc(fn BaselineFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.baselineFn = fn
}

func (h *Handler) getBaselineFunc() BaselineFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.baselineFn
}
