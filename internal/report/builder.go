package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/domain/league"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/timeutil"
)

// Options configures a Builder.
type Options struct {
	Provider         providers.DataProvider
	Roster           league.Roster
	Bonus            league.BonusTable
	Location         *time.Location // nil means host local time
	RecapConcurrency int
	Recorder         *metrics.Recorder
	Logger           *slog.Logger
	Now              func() time.Time
}

// Builder assembles the daily report from upstream data.
type Builder struct {
	provider   providers.DataProvider
	roster     league.Roster
	bonus      league.BonusTable
	loc        *time.Location
	recapLimit int
	recorder   *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
	newRunID   func() string
}

// NewBuilder creates a builder.
func NewBuilder(opts Options) *Builder {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Builder{
		provider:   opts.Provider,
		roster:     opts.Roster,
		bonus:      opts.Bonus,
		loc:        loc,
		recapLimit: opts.RecapConcurrency,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		now:        now,
		newRunID:   uuid.NewString,
	}
}

// Build renders every section. A failing section is replaced by a placeholder
// and never prevents the others from rendering.
func (b *Builder) Build(ctx context.Context) Report {
	start := time.Now()
	runID := b.newRunID()
	if b.logger != nil {
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx, b.logger).With(logging.FieldRunID, runID))
	}

	today := b.now().In(b.loc)
	renderers := b.renderers(today)

	sections := make([]Section, len(Sections))
	var g errgroup.Group
	for i, name := range Sections {
		i, name := i, name
		g.Go(func() error {
			sections[i] = b.section(ctx, name, renderers[name])
			return nil
		})
	}
	_ = g.Wait()

	rep := Report{RunID: runID, GeneratedAt: today, Sections: sections}
	failed := rep.Failed()
	b.recorder.RecordReportRun(time.Since(start), len(failed))
	logging.Info(ctx, b.logger, "report built",
		logging.FieldDate, timeutil.FormatDate(today),
		logging.FieldCount, len(failed),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return rep
}

// BuildSection renders a single named section. It reports false for unknown names.
func (b *Builder) BuildSection(ctx context.Context, name string) (Section, bool) {
	render, ok := b.renderers(b.now().In(b.loc))[name]
	if !ok {
		return Section{}, false
	}
	if b.logger != nil {
		ctx = logging.WithLogger(ctx, logging.FromContext(ctx, b.logger).With(logging.FieldRunID, b.newRunID()))
	}
	return b.section(ctx, name, render), true
}

type renderFunc func(context.Context) (string, error)

func (b *Builder) renderers(today time.Time) map[string]renderFunc {
	yesterday := today.AddDate(0, 0, -1)
	return map[string]renderFunc{
		SectionStandings: b.standings,
		SectionYesterday: func(ctx context.Context) (string, error) {
			return b.day(ctx, timeutil.FormatDate(yesterday), ModePast)
		},
		SectionToday: func(ctx context.Context) (string, error) {
			return b.day(ctx, timeutil.FormatDate(today), ModeFuture)
		},
	}
}

func (b *Builder) section(ctx context.Context, name string, render renderFunc) Section {
	start := time.Now()
	text, err := render(ctx)
	b.recorder.RecordSection(name, time.Since(start), err)
	if err != nil {
		logging.Error(ctx, b.logger, "section unavailable", err, logging.FieldSection, name)
		return Section{Name: name, Text: Placeholder(name, err), Err: err}
	}
	return Section{Name: name, Text: text}
}

func (b *Builder) standings(ctx context.Context) (string, error) {
	if b.provider == nil {
		return "", providers.ErrProviderUnavailable
	}
	standings, err := b.provider.FetchStandings(ctx)
	if err != nil {
		return "", err
	}
	entries := league.ComputeScoreboard(standings, b.roster, b.bonus)
	for _, e := range entries {
		if len(e.MissingTeams) > 0 {
			logging.Warn(ctx, b.logger, "teams missing from standings; counted as zero",
				"owner", e.Owner,
				"teams", e.MissingTeams,
			)
		}
	}
	return FormatStandings(entries), nil
}

func (b *Builder) day(ctx context.Context, date string, mode Mode) (string, error) {
	if b.provider == nil {
		return "", providers.ErrProviderUnavailable
	}
	schedule, err := b.provider.FetchSchedule(ctx, date)
	if err != nil {
		return "", err
	}

	var recaps []string
	if mode == ModePast {
		recaps = FetchRecaps(ctx, b.provider, schedule.Games, b.recapLimit, b.logger)
	}
	now := b.now()
	clock := func(zulu string) (string, error) {
		return timeutil.LocalClock(zulu, now, b.loc)
	}

	text, err := FormatDay(schedule, mode, b.roster, clock, recaps)
	if err != nil {
		return "", &providers.DecodeError{Err: err}
	}
	return text, nil
}

// Placeholder is rendered in place of a section that could not be built.
func Placeholder(section string, err error) string {
	return fmt.Sprintf("ERROR: %s unavailable (%s)\n", section, providers.Reason(err))
}
