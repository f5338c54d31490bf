package fixture

import (
	"context"
	"testing"
)

func TestFetchScheduleReturnsDeterministicGames(t *testing.T) {
	p := New()

	schedule, err := p.FetchSchedule(context.Background(), "2023-01-14")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if schedule.Date != "2023-01-14" || len(schedule.Games) != 2 {
		t.Fatalf("unexpected schedule: %+v", schedule)
	}

	first := schedule.Games[0]
	if first.ID != 2301141 {
		t.Fatalf("unexpected first game id %d", first.ID)
	}
	if first.StartTime != "2023-01-15T00:00:00Z" {
		t.Fatalf("unexpected start time %s", first.StartTime)
	}
	if schedule.Games[1].StartTime != "2023-01-15T02:30:00Z" {
		t.Fatalf("unexpected second start time %s", schedule.Games[1].StartTime)
	}
	winner, _ := first.Result()
	if winner.Team.ID != bruins.ID {
		t.Fatalf("expected away win for bruins, got %+v", winner)
	}
}

func TestFetchScheduleRejectsInvalidDate(t *testing.T) {
	if _, err := New().FetchSchedule(context.Background(), "01/14/2023"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestFetchStandingsCoversDefaultLeague(t *testing.T) {
	standings, err := New().FetchStandings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, id := range []int{6, 15, 55, 52, 13, 12, 20, 18, 14, 2, 22, 16, 10, 3, 54, 30} {
		if _, ok := standings.Record(id); !ok {
			t.Fatalf("expected record for team %d", id)
		}
	}
}

func TestFetchContentHasRecapAndHighlights(t *testing.T) {
	content, err := New().FetchContent(context.Background(), 2301141)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	recap, ok := content.EPGByTitle("Recap")
	if !ok || len(recap.Items) != 1 {
		t.Fatalf("expected recap entry, got %+v", content.EPG)
	}
	if _, ok := recap.Items[0].PlaybackURL(recapPlayback); !ok {
		t.Fatalf("expected recap playback")
	}
	if len(content.Highlights) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(content.Highlights))
	}
}
