package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

// StandingsProvider fetches the league-wide standings.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) (league.Standings, error)
}

// ScheduleProvider fetches one day's games.
// The date parameter is a YYYY-MM-DD string.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (games.Schedule, error)
}

// ContentProvider fetches the media feed for a game.
type ContentProvider interface {
	FetchContent(ctx context.Context, gameID int) (games.Content, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StandingsProvider
	ScheduleProvider
	ContentProvider
}
