package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/report"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
)

// ReportBuilder renders the daily report on demand.
type ReportBuilder interface {
	Build(ctx context.Context) report.Report
	BuildSection(ctx context.Context, name string) (report.Section, bool)
}

// Handler wires HTTP routes to the report builder.
type Handler struct {
	builder  ReportBuilder
	logger   *slog.Logger
	statusFn func() scheduler.Status
}

type sectionResponse struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Failed bool   `json:"failed"`
	Error  string `json:"error,omitempty"`
}

type reportResponse struct {
	RunID       string            `json:"runId"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Text        string            `json:"text"`
	Sections    []sectionResponse `json:"sections"`
	Failed      []string          `json:"failed"`
}

// NewHandler constructs a Handler. statusFn may be nil when no scheduler runs.
func NewHandler(builder ReportBuilder, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	return &Handler{
		builder:  builder,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "scheduler": status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Report renders all sections. Plain text by default, JSON with ?format=json.
// Responds 502 only when every section failed.
func (h *Handler) Report(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.builder == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "report builder not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	rep := h.builder.Build(r.Context())
	status := nethttp.StatusOK
	if len(rep.Sections) > 0 && len(rep.Failed()) == len(rep.Sections) {
		status = nethttp.StatusBadGateway
	}
	logging.Info(r.Context(), logger, "served report", logging.FieldRunID, rep.RunID, "failed", rep.Failed())

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, status, toReportResponse(rep), logger)
		return
	}
	writeText(w, status, rep.Text(), logger)
}

// Section renders one section by name: standings, yesterday or today.
func (h *Handler) Section(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.builder == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "report builder not configured", h.logger)
		return
	}

	name := chi.URLParam(r, "section")
	section, ok := h.builder.BuildSection(r.Context(), name)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown section", h.logger)
		return
	}
	status := nethttp.StatusOK
	if section.Failed() {
		status = nethttp.StatusBadGateway
	}

	logger := loggerFromContext(r, h.logger)
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, status, toSectionResponse(section), logger)
		return
	}
	writeText(w, status, section.Text, logger)
}

func toReportResponse(rep report.Report) reportResponse {
	sections := make([]sectionResponse, 0, len(rep.Sections))
	for _, s := range rep.Sections {
		sections = append(sections, toSectionResponse(s))
	}
	return reportResponse{
		RunID:       rep.RunID,
		GeneratedAt: rep.GeneratedAt,
		Text:        rep.Text(),
		Sections:    sections,
		Failed:      rep.Failed(),
	}
}

func toSectionResponse(s report.Section) sectionResponse {
	resp := sectionResponse{Name: s.Name, Text: s.Text, Failed: s.Failed()}
	if s.Err != nil {
		resp.Error = providers.Reason(s.Err)
	}
	return resp
}
