package league

import (
	"sort"
	"strings"
)

// fallbackRatio is reported for owners with no games played.
const fallbackRatio = 0.5

// ScoreboardEntry is one owner's aggregated line.
type ScoreboardEntry struct {
	Owner       string `json:"owner"`
	Bonus       int    `json:"bonus"`
	Points      int    `json:"points"`
	GamesPlayed int    `json:"gamesPlayed"`

	// MissingTeams lists drafted ids absent from standings; they contribute zero.
	MissingTeams []int `json:"missingTeams,omitempty"`
}

// Ratio is half the points per game played, or 0.5 when no games were played.
func (e ScoreboardEntry) Ratio() float64 {
	if e.GamesPlayed == 0 {
		return fallbackRatio
	}
	return 0.5 * float64(e.Points) / float64(e.GamesPlayed)
}

// ComputeScoreboard aggregates standings per owner, adds bonuses and ranks the result.
// Ordering is points descending, then owner name descending.
func ComputeScoreboard(standings Standings, roster Roster, bonus BonusTable) []ScoreboardEntry {
	entries := make([]ScoreboardEntry, 0, len(roster.Owners))
	for _, owner := range roster.Owners {
		entry := ScoreboardEntry{
			Owner:  owner.Name,
			Bonus:  bonus.Bonus(owner.Name),
			Points: bonus.Bonus(owner.Name),
		}
		for _, id := range owner.TeamIDs {
			rec, ok := standings.Record(id)
			if !ok {
				entry.MissingTeams = append(entry.MissingTeams, id)
				continue
			}
			entry.Points += rec.Points
			entry.GamesPlayed += rec.GamesPlayed
		}
		entries = append(entries, entry)
	}
	SortScoreboard(entries)
	return entries
}

// SortScoreboard orders entries by points descending, ties by owner name descending.
func SortScoreboard(entries []ScoreboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return strings.Compare(entries[i].Owner, entries[j].Owner) > 0
	})
}
