package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{
		Standings:    league.Standings{Divisions: []league.Division{{}}},
		StandingsErr: err,
	}
	if _, got := p.FetchStandings(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubProviderSchedules(t *testing.T) {
	date := "2024-01-01"
	p := &StubProvider{
		Schedules:    map[string]games.Schedule{date: {Date: date, Games: []games.Game{{ID: 1}}}},
		ScheduleErrs: map[string]error{"2024-01-02": errors.New("down")},
	}

	schedule, err := p.FetchSchedule(context.Background(), date)
	if err != nil || len(schedule.Games) != 1 {
		t.Fatalf("expected configured schedule, got %+v err %v", schedule, err)
	}
	if _, err := p.FetchSchedule(context.Background(), "2024-01-02"); err == nil {
		t.Fatalf("expected configured error")
	}
	if _, err := p.FetchSchedule(context.Background(), "2024-01-03"); !errors.Is(err, ErrNoSchedule) {
		t.Fatalf("expected ErrNoSchedule, got %v", err)
	}
	if dates := p.Dates(); len(dates) != 3 || dates[0] != date {
		t.Fatalf("unexpected dates %v", dates)
	}
}

func TestStubProviderContent(t *testing.T) {
	p := &StubProvider{
		Contents:    map[int]games.Content{7: {EPG: []games.EPGEntry{{Title: "Recap"}}}},
		ContentErrs: map[int]error{8: errors.New("missing")},
	}

	content, err := p.FetchContent(context.Background(), 7)
	if err != nil || len(content.EPG) != 1 {
		t.Fatalf("expected content, got %+v err %v", content, err)
	}
	if _, err := p.FetchContent(context.Background(), 8); err == nil {
		t.Fatalf("expected content error")
	}
	if calls := p.ContentCalls(); len(calls) != 2 {
		t.Fatalf("expected 2 content calls, got %v", calls)
	}
}

func TestStubSink(t *testing.T) {
	s := &StubSink{Notify: make(chan struct{})}
	if err := s.Deliver(context.Background(), "hello"); err != nil {
		t.Fatalf("expected delivery success, got %v", err)
	}
	select {
	case <-s.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
	if got := s.Delivered(); len(got) != 1 || got[0] != "hello" {
		t.Fatalf("unexpected deliveries %v", got)
	}

	s.Err = errors.New("sink down")
	if err := s.Deliver(context.Background(), "again"); err == nil {
		t.Fatalf("expected sink error")
	}
}
