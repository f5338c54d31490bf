package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
)

// providerFactory assembles the configured provider behind the instrumentation decorator.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, providerName(cfg.Provider, base), f.metrics, f.logger)
}
