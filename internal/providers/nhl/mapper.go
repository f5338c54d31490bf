package nhl

import (
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/teams"
)

func mapStandings(resp standingsResponse) league.Standings {
	divisions := make([]league.Division, 0, len(resp.Records))
	for _, rec := range resp.Records {
		division := league.Division{Teams: make([]league.TeamRecord, 0, len(rec.TeamRecords))}
		for _, tr := range rec.TeamRecords {
			division.Teams = append(division.Teams, league.TeamRecord{
				TeamID:      tr.Team.ID,
				Points:      tr.Points,
				GamesPlayed: tr.GamesPlayed,
			})
		}
		divisions = append(divisions, division)
	}
	return league.Standings{Divisions: divisions}
}

// mapSchedule keeps only the first date block; a single-date query returns at most one.
func mapSchedule(date string, resp scheduleResponse) games.Schedule {
	schedule := games.Schedule{Date: date}
	if len(resp.Dates) == 0 {
		return schedule
	}
	if resp.Dates[0].Date != "" {
		schedule.Date = resp.Dates[0].Date
	}
	schedule.Games = make([]games.Game, 0, len(resp.Dates[0].Games))
	for _, g := range resp.Dates[0].Games {
		schedule.Games = append(schedule.Games, mapGame(g))
	}
	return schedule
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		ID:        g.GamePk,
		Away:      mapSide(g.Teams.Away),
		Home:      mapSide(g.Teams.Home),
		StartTime: g.GameDate,
	}
}

func mapSide(s sideResponse) games.TeamScore {
	return games.TeamScore{
		Team:  teams.Team{ID: s.Team.ID, Name: s.Team.Name},
		Score: s.Score,
	}
}

func mapContent(resp contentResponse) games.Content {
	content := games.Content{
		EPG:        make([]games.EPGEntry, 0, len(resp.Media.EPG)),
		Highlights: mapMediaItems(resp.Highlights.Scoreboard.Items),
	}
	for _, entry := range resp.Media.EPG {
		content.EPG = append(content.EPG, games.EPGEntry{
			Title: entry.Title,
			Items: mapMediaItems(entry.Items),
		})
	}
	return content
}

func mapMediaItems(items []mediaItemResponse) []games.MediaItem {
	out := make([]games.MediaItem, 0, len(items))
	for _, item := range items {
		playbacks := make([]games.Playback, 0, len(item.Playbacks))
		for _, p := range item.Playbacks {
			playbacks = append(playbacks, games.Playback{Name: p.Name, URL: p.URL})
		}
		out = append(out, games.MediaItem{
			Title:      item.Title,
			Blurb:      item.Blurb,
			PlaybackID: int(item.MediaPlaybackID),
			Playbacks:  playbacks,
		})
	}
	return out
}
