package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
)

const (
	recapTitle    = "Recap"
	recapPlayback = "FLASH_1800K_896x504"

	defaultRecapConcurrency = 4
)

// RecapText renders "<url|blurb>. Goals: <url|label>, ..." from a game's media feed.
// It reports false when the feed has no usable recap.
func RecapText(content games.Content) (string, bool) {
	entry, ok := content.EPGByTitle(recapTitle)
	if !ok || len(entry.Items) == 0 {
		return "", false
	}
	recap := entry.Items[0]
	url, ok := recap.PlaybackURL(recapPlayback)
	if !ok {
		return "", false
	}

	highlights := make([]games.MediaItem, len(content.Highlights))
	copy(highlights, content.Highlights)
	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].PlaybackID < highlights[j].PlaybackID
	})

	goals := make([]string, 0, len(highlights))
	for _, item := range highlights {
		goalURL, ok := item.PlaybackURL(recapPlayback)
		if !ok {
			continue
		}
		goals = append(goals, link(goalURL, goalLabel(item.Title)))
	}
	return fmt.Sprintf("%s. Goals: %s", link(url, recap.Blurb), strings.Join(goals, ", ")), true
}

func link(url, label string) string {
	return "<" + url + "|" + label + ">"
}

// goalLabel is the first word of the title, apostrophes treated as spaces.
func goalLabel(title string) string {
	fields := strings.Fields(strings.ReplaceAll(title, "'", " "))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FetchRecaps looks up recaps for every game concurrently, at most limit at a time.
// The result is indexed like gs; a failed or empty lookup leaves "" in its slot.
func FetchRecaps(ctx context.Context, provider providers.ContentProvider, gs []games.Game, limit int, logger *slog.Logger) []string {
	recaps := make([]string, len(gs))
	if provider == nil || len(gs) == 0 {
		return recaps
	}
	if limit <= 0 {
		limit = defaultRecapConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, game := range gs {
		i, game := i, game
		g.Go(func() error {
			content, err := provider.FetchContent(gctx, game.ID)
			if err != nil {
				logging.Warn(gctx, logger, "recap unavailable",
					logging.FieldGameID, game.ID,
					"error", err,
				)
				return nil
			}
			if text, ok := RecapText(content); ok {
				recaps[i] = text
			}
			return nil
		})
	}
	_ = g.Wait()
	return recaps
}
