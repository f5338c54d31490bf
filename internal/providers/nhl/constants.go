package nhl

import "time"

const (
	providerName       = "nhl"
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	userAgent          = "nhl-fantasy-update/1.0"
	// maxErrorBody caps how much of a non-200 body is kept for error messages.
	maxErrorBody = 512
)
