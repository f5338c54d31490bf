package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/timeutil"
)

// Config controls how the NHL client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches standings, schedules and game content from the NHL stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchStandings retrieves the current standings for every division.
func (c *Client) FetchStandings(ctx context.Context) (league.Standings, error) {
	var payload standingsResponse
	if err := c.fetchJSON(ctx, "/standings", nil, &payload); err != nil {
		return league.Standings{}, err
	}
	return mapStandings(payload), nil
}

// FetchSchedule retrieves the games scheduled on date (YYYY-MM-DD).
func (c *Client) FetchSchedule(ctx context.Context, date string) (games.Schedule, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return games.Schedule{}, fmt.Errorf("nhl: invalid schedule date %q: %w", date, err)
	}
	var payload scheduleResponse
	if err := c.fetchJSON(ctx, "/schedule", url.Values{"date": []string{date}}, &payload); err != nil {
		return games.Schedule{}, err
	}
	return mapSchedule(date, payload), nil
}

// FetchContent retrieves the media feed for a game.
func (c *Client) FetchContent(ctx context.Context, gameID int) (games.Content, error) {
	var payload contentResponse
	if err := c.fetchJSON(ctx, fmt.Sprintf("/game/%d/content/", gameID), nil, &payload); err != nil {
		return games.Content{}, err
	}
	return mapContent(payload), nil
}

// encoding/json silently replaces invalid bytes with U+FFFD.
var errInvalidUTF8 = errors.New("response body is not valid UTF-8")

// fetchJSON issues a GET, requires a 200 and decodes the body into dest.
// Non-200 and transport failures yield *providers.FetchError; invalid JSON or a
// body that is not valid UTF-8 yields *providers.DecodeError.
func (c *Client) fetchJSON(ctx context.Context, path string, query url.Values, dest any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &providers.FetchError{Provider: providerName, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.FetchError{Provider: providerName, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.FetchError{
			Provider:   providerName,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &providers.FetchError{Provider: providerName, URL: target, Err: err}
	}
	if !utf8.Valid(body) {
		return &providers.DecodeError{Provider: providerName, URL: target, Err: errInvalidUTF8}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &providers.DecodeError{Provider: providerName, URL: target, Err: err}
	}
	return nil
}
