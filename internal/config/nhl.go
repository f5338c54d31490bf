package config

// NHLConfig controls how we talk to the NHL stats API.
type NHLConfig struct {
	BaseURL string
	Timeout Duration
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL: envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		Timeout: durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout),
	}
}
