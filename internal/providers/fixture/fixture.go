package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/teams"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/timeutil"
)

const recapPlayback = "FLASH_1800K_896x504"

var (
	bruins    = teams.Team{ID: 6, Name: "Boston Bruins"}
	capitals  = teams.Team{ID: 15, Name: "Washington Capitals"}
	kraken    = teams.Team{ID: 55, Name: "Seattle Kraken"}
	oilers    = teams.Team{ID: 22, Name: "Edmonton Oilers"}
	leafs     = teams.Team{ID: 10, Name: "Toronto Maple Leafs"}
	canadiens = teams.Team{ID: 8, Name: "Montréal Canadiens"}
)

// Provider returns a static league useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchStandings returns a deterministic two-division table.
func (p *Provider) FetchStandings(ctx context.Context) (league.Standings, error) {
	_ = ctx
	return league.Standings{Divisions: []league.Division{
		{Teams: []league.TeamRecord{
			{TeamID: bruins.ID, Points: 52, GamesPlayed: 30},
			{TeamID: leafs.ID, Points: 45, GamesPlayed: 31},
			{TeamID: 13, Points: 38, GamesPlayed: 30},
			{TeamID: 14, Points: 41, GamesPlayed: 29},
			{TeamID: canadiens.ID, Points: 27, GamesPlayed: 30},
		}},
		{Teams: []league.TeamRecord{
			{TeamID: capitals.ID, Points: 40, GamesPlayed: 30},
			{TeamID: 12, Points: 44, GamesPlayed: 29},
			{TeamID: 2, Points: 33, GamesPlayed: 31},
			{TeamID: 3, Points: 39, GamesPlayed: 30},
		}},
		{Teams: []league.TeamRecord{
			{TeamID: 52, Points: 36, GamesPlayed: 30},
			{TeamID: 18, Points: 31, GamesPlayed: 29},
			{TeamID: 16, Points: 22, GamesPlayed: 30},
			{TeamID: 30, Points: 37, GamesPlayed: 30},
		}},
		{Teams: []league.TeamRecord{
			{TeamID: kraken.ID, Points: 39, GamesPlayed: 29},
			{TeamID: oilers.ID, Points: 42, GamesPlayed: 31},
			{TeamID: 20, Points: 35, GamesPlayed: 30},
			{TeamID: 54, Points: 43, GamesPlayed: 31},
		}},
	}}, nil
}

// FetchSchedule returns two games for any valid date, starting in the evening UTC.
func (p *Provider) FetchSchedule(ctx context.Context, date string) (games.Schedule, error) {
	_ = ctx
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return games.Schedule{}, fmt.Errorf("fixture: invalid date %q: %w", date, err)
	}
	start := day.Add(24 * time.Hour)

	return games.Schedule{
		Date: date,
		Games: []games.Game{
			{
				ID:        gameID(day, 1),
				Away:      games.TeamScore{Team: bruins, Score: 4},
				Home:      games.TeamScore{Team: leafs, Score: 2},
				StartTime: start.Format(timeutil.ZuluLayout),
			},
			{
				ID:        gameID(day, 2),
				Away:      games.TeamScore{Team: kraken, Score: 1},
				Home:      games.TeamScore{Team: oilers, Score: 3},
				StartTime: start.Add(150 * time.Minute).Format(timeutil.ZuluLayout),
			},
		},
	}, nil
}

// FetchContent returns a recap plus two goal highlights for every game.
func (p *Provider) FetchContent(ctx context.Context, gameID int) (games.Content, error) {
	_ = ctx
	clip := func(kind string) string {
		return fmt.Sprintf("https://fixtures.example/%d/%s.mp4", gameID, kind)
	}
	return games.Content{
		EPG: []games.EPGEntry{{
			Title: "Recap",
			Items: []games.MediaItem{{
				Blurb:     "Fixture recap",
				Playbacks: []games.Playback{{Name: recapPlayback, URL: clip("recap")}},
			}},
		}},
		Highlights: []games.MediaItem{
			{Title: "Late goal", PlaybackID: gameID%1000 + 2, Playbacks: []games.Playback{{Name: recapPlayback, URL: clip("goal-2")}}},
			{Title: "Opening goal", PlaybackID: gameID%1000 + 1, Playbacks: []games.Playback{{Name: recapPlayback, URL: clip("goal-1")}}},
		},
	}, nil
}

// gameID derives a stable id from the date, e.g. 2023-01-14 game 2 -> 2301142.
func gameID(day time.Time, n int) int {
	return ((day.Year()%100*100+int(day.Month()))*100+day.Day())*10 + n
}
