package report

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

func TestFormatStandingsLayout(t *testing.T) {
	entries := []league.ScoreboardEntry{
		{Owner: "Brett", Points: 180, GamesPlayed: 120},
		{Owner: "Td", Points: 95, GamesPlayed: 9},
		{Owner: "Kenny", Points: 0, GamesPlayed: 0},
	}

	got := FormatStandings(entries)
	want := "*Daily Fantasy Update*\n\n" +
		"`Brett: 180 pts, 120 gp; 0.750`\n" +
		"`Td   :  95 pts,  9 gp; 5.278`\n" +
		"`Kenny:   0 pts,  0 gp; 0.500`\n"
	if got != want {
		t.Fatalf("unexpected standings block:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseStandingsRoundTrip(t *testing.T) {
	standings := league.Standings{Divisions: []league.Division{{Teams: []league.TeamRecord{
		{TeamID: 1, Points: 40, GamesPlayed: 30},
		{TeamID: 2, Points: 35, GamesPlayed: 31},
		{TeamID: 3, Points: 50, GamesPlayed: 29},
		{TeamID: 4, Points: 25, GamesPlayed: 30},
	}}}}
	roster := league.NewRoster(
		league.Owner{Name: "Fish", TeamIDs: []int{1, 2}},
		league.Owner{Name: "Td", TeamIDs: []int{3}},
		league.Owner{Name: "Brett", TeamIDs: []int{4}},
	)
	bonus := league.BonusTable{"Brett": 25}

	entries := league.ComputeScoreboard(standings, roster, bonus)
	parsed, err := ParseStandings(FormatStandings(entries))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(parsed))
	}
	for i, e := range entries {
		p := parsed[i]
		if p.Owner != e.Owner || p.Points != e.Points || p.GamesPlayed != e.GamesPlayed {
			t.Fatalf("entry %d mismatch: parsed %+v, want %+v", i, p, e)
		}
	}
	// Td and Brett tie on 50; the later name ranks first.
	if parsed[0].Owner != "Fish" || parsed[1].Owner != "Td" || parsed[2].Owner != "Brett" {
		t.Fatalf("unexpected order: %+v", parsed)
	}
}

func TestParseStandingsOwnerNames(t *testing.T) {
	cases := []struct {
		name  string
		owner string
	}{
		{name: "plain", owner: "Fish"},
		{name: "colon", owner: "A:B"},
		{name: "trailing colon", owner: "Kenny:"},
		{name: "long", owner: "Brett the Elder"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := []league.ScoreboardEntry{{Owner: tc.owner, Points: 42, GamesPlayed: 12}}
			parsed, err := ParseStandings(FormatStandings(entries))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(parsed) != 1 || parsed[0].Owner != tc.owner || parsed[0].Points != 42 || parsed[0].GamesPlayed != 12 {
				t.Fatalf("unexpected parse %+v", parsed)
			}
		})
	}
}

func TestParseStandingsRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"Daily Fantasy Update\n",
		"*Daily Fantasy Update*\n\nFish : 10 pts, 2 gp; 2.500\n",
		"*Daily Fantasy Update*\n\n`Fish 10 pts`\n",
		"*Daily Fantasy Update*\n\n`Fish : ten pts, 2 gp; 2.500`\n",
	}
	for _, tc := range cases {
		if _, err := ParseStandings(tc); err == nil {
			t.Fatalf("expected error for %q", tc)
		}
	}
}

func TestFormatStandingsEmptyRoster(t *testing.T) {
	got := FormatStandings(nil)
	if !strings.HasPrefix(got, StandingsHeader) || strings.Count(got, "\n") != 2 {
		t.Fatalf("unexpected empty block %q", got)
	}
}
