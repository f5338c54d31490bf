package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/http/handlers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/report"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
)

type stubBuilder struct{}

func (stubBuilder) Build(ctx context.Context) report.Report {
	_ = ctx
	return report.Report{Sections: []report.Section{{Name: report.SectionStandings, Text: "ok\n"}}}
}

func (stubBuilder) BuildSection(ctx context.Context, name string) (report.Section, bool) {
	_ = ctx
	if name != report.SectionStandings {
		return report.Section{}, false
	}
	return report.Section{Name: name, Text: "ok\n"}, true
}

type stubRunner struct{}

func (stubRunner) RunOnce(ctx context.Context) error { return nil }
func (stubRunner) Status() scheduler.Status          { return scheduler.Status{} }

func newTestRouter(origins []string) http.Handler {
	return NewRouter(RouterConfig{
		Handler:     handlers.NewHandler(stubBuilder{}, nil, nil),
		Admin:       handlers.NewAdminHandler(stubRunner{}, "secret", nil),
		CORSOrigins: origins,
	})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(nil)

	cases := map[string]int{
		"/health":           http.StatusOK,
		"/ready":            http.StatusOK,
		"/report":           http.StatusOK,
		"/report/standings": http.StatusOK,
		"/report/playoffs":  http.StatusNotFound,
		"/does-not-exist":   http.StatusNotFound,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s missing request id header", path)
		}
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/report", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestRouterAdminRoute(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/deliver", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	noAdmin := NewRouter(RouterConfig{Handler: handlers.NewHandler(stubBuilder{}, nil, nil)})
	rr = httptest.NewRecorder()
	noAdmin.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/deliver", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected admin route absent, got %d", rr.Code)
	}
}

func TestRouterCORS(t *testing.T) {
	router := newTestRouter([]string{"https://dash.example"})

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Origin", "https://dash.example")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/report", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no cors header for unknown origin, got %q", got)
	}
}
