package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	httpserver "github.com/preston-bernstein/nhl-fantasy-update/internal/http"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/http/handlers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/report"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/scheduler"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/sink"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/timeutil"
)

var metricsSetup = metrics.Setup

// Server runs the report API, the metrics endpoint and the daily scheduler.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	builder       *report.Builder
	httpServer    httpServer
	metricsServer httpServer
	scheduler     Scheduler
	metricsStop   func(context.Context) error
	closeLedger   func() error
}

// New constructs a server with the configured provider, sink and ledger.
func New(cfg config.Config, lg config.League, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, lg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, lg config.League, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, lg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, lg config.League, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	loc := resolveLocation(cfg, logger)
	builder := newReportBuilder(cfg, lg, provider, loc, recorder, logger)
	ledger, closeLedger := buildLedger(cfg, logger)
	sched := scheduler.New(scheduler.Config{
		Builder:  builder,
		Sink:     sink.New(cfg.Report.WebhookURL, nil),
		Ledger:   ledger,
		Logger:   logger,
		Metrics:  recorder,
		Hour:     cfg.Report.DailyHour,
		Location: loc,
	})
	httpSrv := buildHTTPServer(cfg, builder, sched, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		builder:       builder,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
		closeLedger:   closeLedger,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sched Scheduler) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		scheduler:  sched,
	}
}

func resolveLocation(cfg config.Config, logger *slog.Logger) *time.Location {
	loc, ok := timeutil.ResolveLocation(cfg.Report.Timezone)
	if !ok && logger != nil {
		logger.Warn("unknown report timezone, using host local time", slog.String("timezone", cfg.Report.Timezone))
	}
	return loc
}

func newReportBuilder(cfg config.Config, lg config.League, provider providers.DataProvider, loc *time.Location, recorder *metrics.Recorder, logger *slog.Logger) *report.Builder {
	return report.NewBuilder(report.Options{
		Provider:         provider,
		Roster:           lg.Roster,
		Bonus:            lg.Bonus,
		Location:         loc,
		RecapConcurrency: cfg.Report.RecapConcurrency,
		Recorder:         recorder,
		Logger:           logger,
	})
}

func buildHTTPServer(cfg config.Config, builder *report.Builder, sched Scheduler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	var statusFn func() scheduler.Status
	if sched != nil {
		statusFn = sched.Status
	}

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" && sched != nil {
		admin = handlers.NewAdminHandler(sched, cfg.AdminToken, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handlers.NewHandler(builder, logger, statusFn),
		Admin:       admin,
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the scheduler and HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.scheduler.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.scheduler.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop scheduler", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.closeLedger != nil {
		if err := s.closeLedger(); err != nil && s.logger != nil {
			s.logger.Warn("ledger close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              cfg.Metrics.Addr(),
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
