package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/providers/nhl"
)

const (
	providerNHL     = "nhl"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerNHL, "":
		return newNHLProvider(cfg)
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhl", slog.String("provider", cfg.Provider))
		}
		return newNHLProvider(cfg)
	}
}

func newNHLProvider(cfg config.Config) *nhl.Client {
	return nhl.NewClient(nhl.Config{
		BaseURL: cfg.NHL.BaseURL,
		Timeout: cfg.NHL.Timeout,
	})
}
