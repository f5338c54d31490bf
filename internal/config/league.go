package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

// League is the season's owner table and bonus points.
type League struct {
	Roster league.Roster
	Bonus  league.BonusTable
}

type leagueFile struct {
	Owners []league.Owner `json:"owners"`
	Bonus  map[string]int `json:"bonus"`
}

// DefaultLeague returns the current season's draft.
func DefaultLeague() League {
	return League{
		Roster: league.NewRoster(
			league.Owner{Name: "Fish", TeamIDs: []int{6, 15, 55, 52}},   // Bruins, Caps, Kraken, Jets
			league.Owner{Name: "Kenny", TeamIDs: []int{13, 12, 20, 18}}, // Panthers, Canes, Flames, Preds
			league.Owner{Name: "Brett", TeamIDs: []int{14, 2, 22, 16}},  // Lightning, Isles, Oilers, Hawks
			league.Owner{Name: "Td", TeamIDs: []int{10, 3, 54, 30}},     // Leafs, Rags, Knights, Wild
		),
		// All-star break wager, midyear '22.
		Bonus: league.BonusTable{
			"Brett": 44,
			"Fish":  18,
		},
	}
}

// LoadLeague returns DefaultLeague when path is empty, otherwise the league described by the JSON file.
func LoadLeague(path string) (League, error) {
	if path == "" {
		return DefaultLeague(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return League{}, fmt.Errorf("read league file: %w", err)
	}
	return ParseLeague(raw)
}

// ParseLeague decodes a league document: {"owners":[{"name":"..","teams":[..]}],"bonus":{"..":N}}.
func ParseLeague(raw []byte) (League, error) {
	var doc leagueFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return League{}, fmt.Errorf("decode league file: %w", err)
	}
	if len(doc.Owners) == 0 {
		return League{}, fmt.Errorf("league file has no owners")
	}
	for i, owner := range doc.Owners {
		if owner.Name == "" {
			return League{}, fmt.Errorf("league file owner %d has no name", i)
		}
		if err := validOwnerName(owner.Name); err != nil {
			return League{}, fmt.Errorf("league file owner %d: %w", i, err)
		}
	}
	return League{
		Roster: league.NewRoster(doc.Owners...),
		Bonus:  league.BonusTable(doc.Bonus),
	}, nil
}

// validOwnerName rejects names the backticked standings lines cannot carry.
func validOwnerName(name string) error {
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("name %q has surrounding whitespace", name)
	}
	if strings.ContainsAny(name, ":`\r\n") {
		return fmt.Errorf("name %q contains a reserved character", name)
	}
	return nil
}
