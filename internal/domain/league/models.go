package league

// Owner is a fantasy participant and the league team ids they drafted.
type Owner struct {
	Name    string `json:"name"`
	TeamIDs []int  `json:"teams"`
}

// Roster is the ordered owner table for a season.
// Team ids are assumed unique across owners; this is not enforced.
type Roster struct {
	Owners []Owner `json:"owners"`
}

// NewRoster builds a roster preserving owner order.
func NewRoster(owners ...Owner) Roster {
	return Roster{Owners: owners}
}

// OwnerOf returns the first owner that drafted teamID.
func (r Roster) OwnerOf(teamID int) (string, bool) {
	for _, owner := range r.Owners {
		for _, id := range owner.TeamIDs {
			if id == teamID {
				return owner.Name, true
			}
		}
	}
	return "", false
}

// BonusTable holds fixed per-owner point additions.
type BonusTable map[string]int

// Bonus returns the owner's bonus, 0 when absent.
func (b BonusTable) Bonus(owner string) int {
	if b == nil {
		return 0
	}
	return b[owner]
}

// TeamRecord is a single team's season record from the standings feed.
type TeamRecord struct {
	TeamID      int `json:"teamId"`
	Points      int `json:"points"`
	GamesPlayed int `json:"gamesPlayed"`
}

// Division groups team records in feed order.
type Division struct {
	Teams []TeamRecord `json:"teams"`
}

// Standings is the league-wide standings snapshot.
type Standings struct {
	Divisions []Division `json:"divisions"`
}

// Record scans divisions in order and returns the first matching team record.
func (s Standings) Record(teamID int) (TeamRecord, bool) {
	for _, division := range s.Divisions {
		for _, rec := range division.Teams {
			if rec.TeamID == teamID {
				return rec, true
			}
		}
	}
	return TeamRecord{}, false
}
