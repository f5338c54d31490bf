package games

import "github.com/preston-bernstein/nhl-fantasy-update/internal/domain/teams"

// TeamScore pairs a team with its score in a game.
type TeamScore struct {
	Team  teams.Team `json:"team"`
	Score int        `json:"score"`
}

// Game is a scheduled or finished game.
type Game struct {
	ID        int       `json:"gamePk"`
	Away      TeamScore `json:"away"`
	Home      TeamScore `json:"home"`
	StartTime string    `json:"startTime"`
}

// Result returns winner and loser by strict score comparison.
// Ties resolve to the home team as winner and the away team as loser, so a
// tied game renders "Home over Away". Winner and loser are always distinct
// teams; deciding each side with its own comparison would name home twice.
func (g Game) Result() (winner, loser TeamScore) {
	if g.Away.Score > g.Home.Score {
		return g.Away, g.Home
	}
	return g.Home, g.Away
}

// Schedule is one day's slate.
type Schedule struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// HasGames reports whether any games are scheduled.
func (s Schedule) HasGames() bool {
	return len(s.Games) > 0
}

// Playback is one encoding of a media item.
type Playback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MediaItem is a video clip from the game content feed.
type MediaItem struct {
	Title      string     `json:"title"`
	Blurb      string     `json:"blurb"`
	PlaybackID int        `json:"mediaPlaybackId"`
	Playbacks  []Playback `json:"playbacks"`
}

// PlaybackURL returns the url of the playback with the given name.
func (m MediaItem) PlaybackURL(name string) (string, bool) {
	for _, p := range m.Playbacks {
		if p.Name == name {
			return p.URL, true
		}
	}
	return "", false
}

// EPGEntry is a titled group of media items (e.g. "Recap").
type EPGEntry struct {
	Title string      `json:"title"`
	Items []MediaItem `json:"items"`
}

// Content is the media feed for a single game.
type Content struct {
	EPG        []EPGEntry  `json:"epg"`
	Highlights []MediaItem `json:"highlights"`
}

// EPGByTitle returns the first entry with an exactly matching title.
func (c Content) EPGByTitle(title string) (EPGEntry, bool) {
	for _, entry := range c.EPG {
		if entry.Title == title {
			return entry, true
		}
	}
	return EPGEntry{}, false
}
