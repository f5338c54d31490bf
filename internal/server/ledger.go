package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/config"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/store"
)

const redisConnectTimeout = 5 * time.Second

// openRedis remains a var for tests to override.
var openRedis = func(ctx context.Context, url string) (store.DeliveryLedger, func() error, error) {
	return store.OpenRedis(ctx, url)
}

// buildLedger returns the Redis ledger when REDIS_URL is set and reachable, otherwise an
// in-memory one. The returned close func is never nil.
func buildLedger(cfg config.Config, logger *slog.Logger) (store.DeliveryLedger, func() error) {
	noop := func() error { return nil }
	if cfg.RedisURL == "" {
		return store.NewMemoryStore(), noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	ledger, closeFn, err := openRedis(ctx, cfg.RedisURL)
	if err != nil {
		logging.Warn(ctx, logger, "redis ledger unavailable, using in-memory ledger", "error", err)
		return store.NewMemoryStore(), noop
	}
	if closeFn == nil {
		closeFn = noop
	}
	logging.Info(ctx, logger, "delivery ledger backed by redis")
	return ledger, closeFn
}
