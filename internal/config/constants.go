package config

import "time"

const (
	envMode             = "MODE"
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envNHLBaseURL       = "NHL_BASE_URL"
	envNHLTimeout       = "NHL_HTTP_TIMEOUT"
	envReportTimezone   = "REPORT_TIMEZONE"
	envReportDailyHour  = "REPORT_DAILY_HOUR"
	envRecapConcurrency = "RECAP_CONCURRENCY"
	envLeagueFile       = "LEAGUE_FILE"
	envSlackWebhook     = "SLACK_WEBHOOK_URL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envRedisURL         = "REDIS_URL"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envAdminToken       = "ADMIN_TOKEN"

	ModeOnce  = "once"
	ModeServe = "serve"

	defaultMode       = ModeOnce
	defaultPort       = "4000"
	defaultProvider   = "nhl"
	defaultNHLBaseURL = "https://statsapi.web.nhl.com/api/v1"
	defaultNHLTimeout = 10 * Duration(time.Second)
	// Local hour at which serve mode posts the daily update.
	defaultReportDailyHour  = 13
	defaultRecapConcurrency = 4
	defaultMetricsPort      = "9090"
	defaultServiceName      = "nhl-fantasy-update"
)
