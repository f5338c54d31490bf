package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/sink"
)

// RunOnce builds today's report, delivers it to the configured sink and flushes telemetry.
// Failed sections are rendered in place; only a delivery failure is returned.
func RunOnce(ctx context.Context, cfg config.Config, lg config.League, logger *slog.Logger) error {
	return runOnce(ctx, cfg, lg, logger, nil, sink.New(cfg.Report.WebhookURL, nil))
}

func runOnce(ctx context.Context, cfg config.Config, lg config.League, logger *slog.Logger, provider providers.DataProvider, out sink.Sink) error {
	recorder, _, metricsStop := buildMetrics(cfg, logger, nil)
	if metricsStop != nil {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := metricsStop(flushCtx); err != nil {
				logging.Warn(ctx, logger, "metrics flush failed", "error", err)
			}
		}()
	}

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}
	builder := newReportBuilder(cfg, lg, provider, resolveLocation(cfg, logger), recorder, logger)

	start := time.Now()
	rep := builder.Build(ctx)
	if failed := rep.Failed(); len(failed) > 0 {
		logging.Warn(ctx, logger, "report rendered with failed sections",
			logging.FieldRunID, rep.RunID,
			"failed", failed,
		)
	}

	if err := out.Deliver(ctx, rep.Text()); err != nil {
		recorder.RecordDelivery(metrics.OutcomeFailed, time.Since(start))
		return fmt.Errorf("deliver report: %w", err)
	}
	recorder.RecordDelivery(metrics.OutcomeOK, time.Since(start))
	logging.Info(ctx, logger, "report delivered",
		logging.FieldRunID, rep.RunID,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}
