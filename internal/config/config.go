package config

import "strings"

// Config holds runtime configuration for the daily update.
type Config struct {
	Mode     string
	Port     string
	Provider string
	NHL      NHLConfig
	Report   ReportConfig
	Metrics  MetricsConfig

	// RedisURL backs the delivery ledger; empty keeps it in memory.
	RedisURL    string
	CORSOrigins []string
	AdminToken  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Mode:     loadMode(),
		Port:     envOrDefault(envPort, defaultPort),
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		NHL:      loadNHL(),
		Report:   loadReport(),
		Metrics:  loadMetrics(),

		RedisURL:    envOrDefault(envRedisURL, ""),
		CORSOrigins: listEnv(envCORSOrigins),
		AdminToken:  envOrDefault(envAdminToken, ""),
	}
}

func loadMode() string {
	mode := strings.ToLower(strings.TrimSpace(envOrDefault(envMode, defaultMode)))
	if mode != ModeServe {
		return ModeOnce
	}
	return mode
}
