package report

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/teststubs"
)

func playback(url string) []games.Playback {
	return []games.Playback{
		{Name: "HTTP_CLOUD_MOBILE", URL: url + ".m3u8"},
		{Name: recapPlayback, URL: url},
	}
}

func sampleContent() games.Content {
	return games.Content{
		EPG: []games.EPGEntry{
			{Title: "Extended Highlights", Items: []games.MediaItem{{Blurb: "ext", Playbacks: playback("x")}}},
			{Title: "Recap", Items: []games.MediaItem{{Blurb: "BOS@TOR: Bruins top Leafs", Playbacks: playback("recap")}}},
		},
		Highlights: []games.MediaItem{
			{Title: "Pastrnak's power-play goal", PlaybackID: 30, Playbacks: playback("g3")},
			{Title: "Marchand scores early", PlaybackID: 10, Playbacks: playback("g1")},
			{Title: "Save of the night", PlaybackID: 15},
			{Title: "Matthews' wrister", PlaybackID: 20, Playbacks: playback("g2")},
		},
	}
}

func TestRecapText(t *testing.T) {
	got, ok := RecapText(sampleContent())
	if !ok {
		t.Fatalf("expected recap")
	}
	want := "<recap|BOS@TOR: Bruins top Leafs>. Goals: <g1|Marchand>, <g2|Matthews>, <g3|Pastrnak>"
	if got != want {
		t.Fatalf("unexpected recap:\n%s\nwant:\n%s", got, want)
	}
}

func TestRecapTextMissingPieces(t *testing.T) {
	noRecap := sampleContent()
	noRecap.EPG = noRecap.EPG[:1]

	noItems := sampleContent()
	noItems.EPG[1].Items = nil

	noPlayback := sampleContent()
	noPlayback.EPG[1].Items[0].Playbacks = []games.Playback{{Name: "other", URL: "u"}}

	cases := map[string]games.Content{
		"no recap entry": noRecap,
		"no items":       noItems,
		"no playback":    noPlayback,
		"empty feed":     {},
	}
	for name, content := range cases {
		if text, ok := RecapText(content); ok || text != "" {
			t.Fatalf("%s: expected no recap, got %q", name, text)
		}
	}
}

func TestRecapTextWithoutHighlights(t *testing.T) {
	content := sampleContent()
	content.Highlights = nil
	got, ok := RecapText(content)
	if !ok || got != "<recap|BOS@TOR: Bruins top Leafs>. Goals: " {
		t.Fatalf("unexpected recap %q", got)
	}
}

func TestFetchRecapsPreservesOrderAndToleratesFailures(t *testing.T) {
	stub := &teststubs.StubProvider{
		Contents: map[int]games.Content{
			1: sampleContent(),
			3: sampleContent(),
		},
		ContentErrs: map[int]error{2: errors.New("boom")},
	}
	gs := []games.Game{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	recaps := FetchRecaps(context.Background(), stub, gs, 2, nil)
	if len(recaps) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(recaps))
	}
	if recaps[0] == "" || recaps[2] == "" {
		t.Fatalf("expected recaps for games 1 and 3, got %q", recaps)
	}
	if recaps[1] != "" || recaps[3] != "" {
		t.Fatalf("expected empty slots for games 2 and 4, got %q", recaps)
	}
	if len(stub.ContentCalls()) != 4 {
		t.Fatalf("expected 4 content calls, got %v", stub.ContentCalls())
	}
}

func TestFetchRecapsNilProvider(t *testing.T) {
	recaps := FetchRecaps(context.Background(), nil, []games.Game{{ID: 1}}, 0, nil)
	if len(recaps) != 1 || recaps[0] != "" {
		t.Fatalf("unexpected recaps %q", recaps)
	}
}
