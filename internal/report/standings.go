package report

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
)

// StandingsHeader opens the standings block.
const StandingsHeader = "*Daily Fantasy Update*"

const standingsLine = "`%-5s: %3d pts, %2d gp; %.3f`"

// ParsedEntry is one owner line read back from a rendered standings block.
type ParsedEntry struct {
	Owner       string
	Points      int
	GamesPlayed int
	Ratio       float64
}

// FormatStandings renders the ranked scoreboard, one backticked line per owner.
func FormatStandings(entries []league.ScoreboardEntry) string {
	var b strings.Builder
	b.WriteString(StandingsHeader)
	b.WriteString("\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, standingsLine, e.Owner, e.Points, e.GamesPlayed, e.Ratio())
		b.WriteString("\n")
	}
	return b.String()
}

// ParseStandings reads a block produced by FormatStandings.
func ParseStandings(text string) ([]ParsedEntry, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	if !scanner.Scan() || scanner.Text() != StandingsHeader {
		return nil, fmt.Errorf("standings: missing header")
	}

	entries := make([]ParsedEntry, 0)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		entry, err := parseStandingsLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseStandingsLine(line string) (ParsedEntry, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(line, "`"), "`")
	if len(body) != len(line)-2 {
		return ParsedEntry{}, fmt.Errorf("standings: line %q is not backticked", line)
	}
	// The numeric tail never contains a colon, so the owner is everything before the last one.
	i := strings.LastIndex(body, ":")
	if i < 0 {
		return ParsedEntry{}, fmt.Errorf("standings: line %q has no owner", line)
	}
	name, rest := body[:i], body[i+1:]

	var entry ParsedEntry
	entry.Owner = strings.TrimRight(name, " ")
	if _, err := fmt.Sscanf(rest, " %d pts, %d gp; %f", &entry.Points, &entry.GamesPlayed, &entry.Ratio); err != nil {
		return ParsedEntry{}, fmt.Errorf("standings: parse %q: %w", line, err)
	}
	return entry, nil
}
