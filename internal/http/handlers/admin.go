package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
)

// DeliveryRunner builds and posts today's report.
type DeliveryRunner interface {
	RunOnce(ctx context.Context) error
	Status() scheduler.Status
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	runner DeliveryRunner
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(runner DeliveryRunner, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		runner: runner,
		token:  token,
		logger: logger,
	}
}

// Deliver posts today's report immediately. The delivery ledger still applies, so a
// second call on the same day answers 409.
func (h *AdminHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(r.Context(), h.logger, "admin unauthorized",
			logging.FieldPath, r.URL.Path,
			"client_ip", requestutil.ClientIP(r),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.runner == nil {
		writeError(w, r, http.StatusServiceUnavailable, "scheduler not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	err := h.runner.RunOnce(r.Context())
	switch {
	case errors.Is(err, scheduler.ErrAlreadyDelivered):
		writeError(w, r, http.StatusConflict, "already delivered today", logger)
		return
	case err != nil:
		logging.Warn(r.Context(), logger, "admin delivery failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "delivery failed", logger)
		return
	}

	status := h.runner.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "delivered",
		"date":   status.LastDeliveredDate,
	}, logger)
	logging.Info(r.Context(), logger, "admin delivery complete", logging.FieldDate, status.LastDeliveredDate)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
