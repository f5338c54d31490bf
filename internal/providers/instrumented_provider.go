package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/games"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
)

const (
	OpStandings = "standings"
	OpSchedule  = "schedule"
	OpContent   = "content"
)

// instrumentedProvider wraps a DataProvider and records latency and failures for every upstream call.
type instrumentedProvider struct {
	next         DataProvider
	providerName string
	metrics      *metrics.Recorder
	logger       *slog.Logger
	now          func() time.Time
}

// NewInstrumentedProvider wraps next with call metrics and debug logging.
func NewInstrumentedProvider(next DataProvider, providerName string, recorder *metrics.Recorder, logger *slog.Logger) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		next:         next,
		providerName: providerName,
		metrics:      recorder,
		logger:       logger,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context) (league.Standings, error) {
	if p.next == nil {
		return league.Standings{}, p.unavailable(ctx, OpStandings)
	}
	start := p.now()
	standings, err := p.next.FetchStandings(ctx)
	p.observe(ctx, OpStandings, start, err, slog.Int(logging.FieldCount, len(standings.Divisions)))
	return standings, err
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, date string) (games.Schedule, error) {
	if p.next == nil {
		return games.Schedule{}, p.unavailable(ctx, OpSchedule)
	}
	start := p.now()
	schedule, err := p.next.FetchSchedule(ctx, date)
	p.observe(ctx, OpSchedule, start, err, slog.String(logging.FieldDate, date), slog.Int(logging.FieldCount, len(schedule.Games)))
	return schedule, err
}

func (p *instrumentedProvider) FetchContent(ctx context.Context, gameID int) (games.Content, error) {
	if p.next == nil {
		return games.Content{}, p.unavailable(ctx, OpContent)
	}
	start := p.now()
	content, err := p.next.FetchContent(ctx, gameID)
	p.observe(ctx, OpContent, start, err, slog.Int(logging.FieldGameID, gameID))
	return content, err
}

func (p *instrumentedProvider) observe(ctx context.Context, operation string, start time.Time, err error, args ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, operation, elapsed, err)

	args = append(args, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	if err != nil {
		args = append(args, "error", err)
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, operation, "provider fetch failed", args...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, operation, "provider fetch complete", args...)
}

func (p *instrumentedProvider) unavailable(ctx context.Context, operation string) error {
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, operation, "provider unavailable")
	p.metrics.RecordProviderAttempt(p.providerName, operation, 0, ErrProviderUnavailable)
	return ErrProviderUnavailable
}
