package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

// Mode selects how a day's slate is rendered.
type Mode int

const (
	// ModePast renders final results with recaps.
	ModePast Mode = iota
	// ModeFuture renders matchups with local start times.
	ModeFuture
)

const (
	yesterdayHeader = "*Yesterday's results:*"
	todayHeader     = "*Today's games:*"

	// NoGamesYesterday is rendered instead of an empty results block.
	NoGamesYesterday = "ERROR: no games yesterday!"
	// NoGamesToday is rendered instead of an empty schedule block.
	NoGamesToday = "ERROR: no games today!"
)

// ClockFunc renders a game's UTC start time as a local clock reading.
type ClockFunc func(zulu string) (string, error)

// OwnerAnnotation returns " [_owner_]" for drafted teams, empty otherwise.
func OwnerAnnotation(roster league.Roster, teamID int) string {
	owner, ok := roster.OwnerOf(teamID)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" [_%s_]", owner)
}

// FormatDay renders one day's slate. recaps is indexed like schedule.Games and
// only consulted in ModePast; empty entries are omitted.
func FormatDay(schedule games.Schedule, mode Mode, roster league.Roster, clock ClockFunc, recaps []string) (string, error) {
	if !schedule.HasGames() {
		if mode == ModePast {
			return NoGamesYesterday + "\n", nil
		}
		return NoGamesToday + "\n", nil
	}

	var b strings.Builder
	if mode == ModePast {
		b.WriteString(yesterdayHeader)
	} else {
		b.WriteString(todayHeader)
	}
	b.WriteString("\n")

	for i, game := range schedule.Games {
		b.WriteString("- ")
		if mode == ModePast {
			b.WriteString(resultRow(game, roster, recapAt(recaps, i)))
		} else {
			row, err := matchupRow(game, roster, clock)
			if err != nil {
				return "", fmt.Errorf("game %d: %w", game.ID, err)
			}
			b.WriteString(row)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func resultRow(game games.Game, roster league.Roster, recap string) string {
	winner, loser := game.Result()
	row := teamLabel(winner, roster) + " over " + teamLabel(loser, roster)
	if recap != "" {
		row += ": " + recap
	}
	return row
}

func matchupRow(game games.Game, roster league.Roster, clock ClockFunc) (string, error) {
	start, err := clock(game.StartTime)
	if err != nil {
		return "", err
	}
	return teamLabel(game.Away, roster) + " @ " + teamLabel(game.Home, roster) + ", " + start, nil
}

func teamLabel(side games.TeamScore, roster league.Roster) string {
	return side.Team.ShortName() + OwnerAnnotation(roster, side.Team.ID)
}

func recapAt(recaps []string, i int) string {
	if i < len(recaps) {
		return recaps[i]
	}
	return ""
}
