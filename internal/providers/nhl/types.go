package nhl

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type standingsResponse struct {
	Records []divisionRecordResponse `json:"records"`
}

type divisionRecordResponse struct {
	TeamRecords []teamRecordResponse `json:"teamRecords"`
}

type teamRecordResponse struct {
	Team        teamResponse `json:"team"`
	Points      int          `json:"points"`
	GamesPlayed int          `json:"gamesPlayed"`
}

type scheduleResponse struct {
	Dates []scheduleDateResponse `json:"dates"`
}

type scheduleDateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   int           `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Teams    matchResponse `json:"teams"`
}

type matchResponse struct {
	Away sideResponse `json:"away"`
	Home sideResponse `json:"home"`
}

type sideResponse struct {
	Team  teamResponse `json:"team"`
	Score int          `json:"score"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type contentResponse struct {
	Media      mediaResponse      `json:"media"`
	Highlights highlightsResponse `json:"highlights"`
}

type mediaResponse struct {
	EPG []epgResponse `json:"epg"`
}

type epgResponse struct {
	Title string              `json:"title"`
	Items []mediaItemResponse `json:"items"`
}

type highlightsResponse struct {
	Scoreboard scoreboardHighlightsResponse `json:"scoreboard"`
}

type scoreboardHighlightsResponse struct {
	Items []mediaItemResponse `json:"items"`
}

type mediaItemResponse struct {
	Title           string             `json:"title"`
	Blurb           string             `json:"blurb"`
	MediaPlaybackID flexInt            `json:"mediaPlaybackId"`
	Playbacks       []playbackResponse `json:"playbacks"`
}

type playbackResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// flexInt accepts ids sent either as JSON numbers or numeric strings.
// Non-numeric strings decode as 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
