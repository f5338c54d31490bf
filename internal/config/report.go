package config

// ReportConfig controls report rendering and delivery.
type ReportConfig struct {
	Timezone         string // empty means host local time
	DailyHour        int    // local hour (0-23) for the scheduled post in serve mode
	RecapConcurrency int
	LeagueFile       string // optional JSON roster/bonus override
	WebhookURL       string // chat incoming webhook; stdout when empty
}

func loadReport() ReportConfig {
	return ReportConfig{
		Timezone:         envOrDefault(envReportTimezone, ""),
		DailyHour:        hourEnvOrDefault(envReportDailyHour, defaultReportDailyHour),
		RecapConcurrency: intEnvOrDefault(envRecapConcurrency, defaultRecapConcurrency),
		LeagueFile:       envOrDefault(envLeagueFile, ""),
		WebhookURL:       envOrDefault(envSlackWebhook, ""),
	}
}
