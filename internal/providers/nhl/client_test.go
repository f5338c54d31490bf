package nhl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
)

func fixtureServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	mux := http.NewServeMux()
	serveFile := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.RequestURI())
			raw, err := os.ReadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("read fixture %s: %v", name, err)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(raw)
		}
	}
	mux.HandleFunc("/api/v1/standings", serveFile("standings.json"))
	mux.HandleFunc("/api/v1/schedule", serveFile("schedule.json"))
	mux.HandleFunc("/api/v1/game/2022020700/content/", serveFile("content.json"))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestFetchStandingsMapsDivisions(t *testing.T) {
	srv, paths := fixtureServer(t)
	client := NewClient(Config{BaseURL: srv.URL + "/api/v1/"})

	standings, err := client.FetchStandings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(standings.Divisions) != 2 {
		t.Fatalf("expected 2 divisions, got %d", len(standings.Divisions))
	}
	rec, ok := standings.Record(15)
	if !ok || rec.Points != 40 || rec.GamesPlayed != 30 {
		t.Fatalf("unexpected record %+v ok=%v", rec, ok)
	}
	if (*paths)[0] != "/api/v1/standings" {
		t.Fatalf("unexpected request path %s", (*paths)[0])
	}
}

func TestFetchScheduleSendsDateAndMapsGames(t *testing.T) {
	srv, paths := fixtureServer(t)
	client := NewClient(Config{BaseURL: srv.URL + "/api/v1"})

	schedule, err := client.FetchSchedule(context.Background(), "2023-01-14")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if (*paths)[0] != "/api/v1/schedule?date=2023-01-14" {
		t.Fatalf("unexpected request %s", (*paths)[0])
	}
	if schedule.Date != "2023-01-14" || len(schedule.Games) != 2 {
		t.Fatalf("unexpected schedule %+v", schedule)
	}
	game := schedule.Games[0]
	if game.ID != 2022020700 || game.StartTime != "2023-01-15T00:00:00Z" {
		t.Fatalf("unexpected game %+v", game)
	}
	if game.Away.Team.Name != "Boston Bruins" || game.Away.Score != 4 || game.Home.Team.ID != 10 || game.Home.Score != 2 {
		t.Fatalf("unexpected teams %+v", game)
	}
}

func TestFetchScheduleRejectsInvalidDate(t *testing.T) {
	client := NewClient(Config{HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatalf("no request expected for invalid date")
		return nil, nil
	})}})

	if _, err := client.FetchSchedule(context.Background(), "01/14/2023"); err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestFetchContentMapsMediaAndHighlights(t *testing.T) {
	srv, paths := fixtureServer(t)
	client := NewClient(Config{BaseURL: srv.URL + "/api/v1"})

	content, err := client.FetchContent(context.Background(), 2022020700)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if (*paths)[0] != "/api/v1/game/2022020700/content/" {
		t.Fatalf("unexpected request path %s", (*paths)[0])
	}
	recap, ok := content.EPGByTitle("Recap")
	if !ok || len(recap.Items) != 1 || recap.Items[0].Blurb != "Recap: BOS 4, TOR 2" {
		t.Fatalf("unexpected recap entry %+v", recap)
	}
	if len(content.Highlights) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(content.Highlights))
	}
	if content.Highlights[0].PlaybackID != 1200 || content.Highlights[1].PlaybackID != 900 {
		t.Fatalf("expected string and numeric playback ids decoded, got %+v", content.Highlights)
	}
}

func TestFetchJSONHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchStandings(context.Background())
	if !errors.Is(err, providers.ErrFetch) {
		t.Fatalf("expected fetch error on non-200 response, got %v", err)
	}
	fe, ok := providers.AsFetchError(err)
	if !ok || fe.StatusCode != http.StatusBadGateway || fe.Body != "boom" {
		t.Fatalf("unexpected fetch error %+v", fe)
	}
}

func TestFetchJSONHandlesTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, cause
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchSchedule(context.Background(), "2023-01-14")
	if !errors.Is(err, providers.ErrFetch) || !errors.Is(err, cause) {
		t.Fatalf("expected fetch error wrapping cause, got %v", err)
	}
	if fe, _ := providers.AsFetchError(err); fe.StatusCode != 0 {
		t.Fatalf("expected zero status for transport failure, got %d", fe.StatusCode)
	}
}

func TestFetchJSONHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchContent(context.Background(), 1)
	if !errors.Is(err, providers.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if errors.Is(err, providers.ErrFetch) {
		t.Fatalf("decode error must be distinct from fetch error")
	}
}

func TestFetchJSONRejectsInvalidUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dates":[{"games":[{"gamePk":1,"teams":{"away":{"team":{"id":6,"name":"Boston ` + "\xff\xfe" + `Bruins"}}}}]}]}`))
	}))
	defer srv.Close()
	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchSchedule(context.Background(), "2023-01-15")
	if !errors.Is(err, providers.ErrDecode) {
		t.Fatalf("expected decode error for invalid utf-8, got %v", err)
	}
	if !errors.Is(err, errInvalidUTF8) {
		t.Fatalf("expected utf-8 cause, got %v", err)
	}
}

func TestFetchJSONSetsHeaders(t *testing.T) {
	var accept, agent string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		accept = req.Header.Get("Accept")
		agent = req.Header.Get("User-Agent")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"records":[]}`)),
			Header:     make(http.Header),
		}, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchStandings(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if accept != "application/json" || agent != userAgent {
		t.Fatalf("unexpected headers accept=%q agent=%q", accept, agent)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.Name() != "nhl" {
		t.Fatalf("unexpected provider name %s", c.Name())
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
