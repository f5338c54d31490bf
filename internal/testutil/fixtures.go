package testutil

import (
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/teams"
)

// SampleTeam returns a team with the given id and full name.
func SampleTeam(id int, name string) teams.Team {
	return teams.Team{ID: id, Name: name}
}

// SampleGame returns a game with the given sides and scores.
func SampleGame(id int, away teams.Team, awayScore int, home teams.Team, homeScore int, start string) games.Game {
	return games.Game{
		ID:        id,
		Away:      games.TeamScore{Team: away, Score: awayScore},
		Home:      games.TeamScore{Team: home, Score: homeScore},
		StartTime: start,
	}
}

// SampleStandings puts every record into a single division.
func SampleStandings(records ...league.TeamRecord) league.Standings {
	return league.Standings{Divisions: []league.Division{{Teams: records}}}
}
