package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type sectionStats struct {
	renders  int
	failures int
}

// Recorder captures lightweight, in-memory metrics about upstream calls and report sections.
// When telemetry is enabled the same events are mirrored to OpenTelemetry instruments.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	sections map[string]*sectionStats
	runs     int

	// deliveries counts attempts by outcome ("ok", "failed", "skipped").
	deliveries map[string]int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*providerStats),
		sections: make(map[string]*sectionStats),

		deliveries: make(map[string]int),
		otel:       otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, operation, duration, err)
	}
}

// RecordSection tracks a rendered report section and whether it fell back to a placeholder.
func (r *Recorder) RecordSection(section string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sections[section]
	if !ok {
		stats = &sectionStats{}
		r.sections[section] = stats
	}
	stats.renders++
	if err != nil {
		stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSection(section, duration, err)
	}
}

// RecordReportRun tracks a complete report build.
func (r *Recorder) RecordReportRun(duration time.Duration, failedSections int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, failedSections)
	}
}

// RecordDelivery tracks a report handed to a sink. outcome is "ok", "failed" or "skipped".
func (r *Recorder) RecordDelivery(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.deliveries[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDelivery(outcome, duration)
	}
}

// Deliveries returns how many deliveries ended with outcome.
func (r *Recorder) Deliveries(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deliveries[outcome]
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// SectionFailures returns how many times a section rendered as a placeholder.
func (r *Recorder) SectionFailures(section string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sections[section]; ok {
		return stats.failures
	}
	return 0
}

// SectionRenders returns how many times a section was rendered.
func (r *Recorder) SectionRenders(section string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sections[section]; ok {
		return stats.renders
	}
	return 0
}

// Runs returns the number of report builds recorded.
func (r *Recorder) Runs() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
