package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

// ErrNoSchedule is returned by StubProvider for dates it has no schedule for.
var ErrNoSchedule = errors.New("stub: no schedule for date")

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Standings    league.Standings
	StandingsErr error
	Schedules    map[string]games.Schedule // keyed by date
	ScheduleErrs map[string]error          // keyed by date
	Contents     map[int]games.Content     // keyed by game id
	ContentErrs  map[int]error             // keyed by game id
	Calls        atomic.Int32

	mu           sync.Mutex
	dates        []string
	contentCalls []int
}

// FetchStandings returns the configured standings and error while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context) (league.Standings, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Standings, s.StandingsErr
}

// FetchSchedule returns the schedule configured for date.
func (s *StubProvider) FetchSchedule(ctx context.Context, date string) (games.Schedule, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()

	if err, ok := s.ScheduleErrs[date]; ok {
		return games.Schedule{}, err
	}
	schedule, ok := s.Schedules[date]
	if !ok {
		return games.Schedule{}, ErrNoSchedule
	}
	return schedule, nil
}

// FetchContent returns the content configured for gameID, or an empty feed.
func (s *StubProvider) FetchContent(ctx context.Context, gameID int) (games.Content, error) {
	if err := ctx.Err(); err != nil {
		return games.Content{}, err
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.contentCalls = append(s.contentCalls, gameID)
	s.mu.Unlock()

	if err, ok := s.ContentErrs[gameID]; ok {
		return games.Content{}, err
	}
	return s.Contents[gameID], nil
}

// Dates returns every date passed to FetchSchedule in call order.
func (s *StubProvider) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}

// ContentCalls returns every game id passed to FetchContent.
func (s *StubProvider) ContentCalls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.contentCalls...)
}

// StubSink is a test double for sink.Sink.
type StubSink struct {
	Err    error
	Notify chan struct{}

	mu        sync.Mutex
	delivered []string
}

// Deliver records the message for verification in tests.
func (s *StubSink) Deliver(ctx context.Context, text string) error {
	_ = ctx
	s.mu.Lock()
	s.delivered = append(s.delivered, text)
	s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	return s.Err
}

// Delivered returns every message passed to Deliver.
func (s *StubSink) Delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.delivered...)
}
