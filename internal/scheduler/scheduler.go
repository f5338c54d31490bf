package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/logging"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/report"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/sink"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/store"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/timeutil"
)

const failuresBeforeUnready = 3

// ErrAlreadyDelivered is returned by RunOnce when today's report was already posted.
var ErrAlreadyDelivered = errors.New("report already delivered for date")

// ReportBuilder produces a fresh report.
type ReportBuilder interface {
	Build(ctx context.Context) report.Report
}

// Scheduler builds and delivers the report once a day at a fixed local hour.
type Scheduler struct {
	builder  ReportBuilder
	sink     sink.Sink
	ledger   store.DeliveryLedger
	logger   *slog.Logger
	metrics  *metrics.Recorder
	hour     int
	loc      *time.Location
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
	onResult func(error)

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the daily loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	LastDeliveredDate   string    `json:"lastDeliveredDate,omitempty"`
	NextRun             time.Time `json:"nextRun"`
}

// IsReady reports whether the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < failuresBeforeUnready
}

// Config wires a Scheduler.
type Config struct {
	Builder  ReportBuilder
	Sink     sink.Sink
	Ledger   store.DeliveryLedger // nil means an in-memory ledger
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Hour     int
	Location *time.Location
}

// New constructs a Scheduler.
func New(cfg Config) *Scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	ledger := cfg.Ledger
	if ledger == nil {
		ledger = store.NewMemoryStore()
	}
	return &Scheduler{
		builder: cfg.Builder,
		sink:    cfg.Sink,
		ledger:  ledger,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		hour:    cfg.Hour,
		loc:     loc,
		now:     time.Now,
		after:   time.After,
		done:    make(chan struct{}),
	}
}

// NextRun returns the first hour:00 in loc strictly after now.
func NextRun(now time.Time, hour int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next
}

// Start runs the daily loop until the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.restoreDelivered(ctx)

	go func() {
		for {
			now := s.now()
			next := NextRun(now, s.hour, s.loc)
			s.setNextRun(next)
			logging.Info(ctx, s.logger, "scheduler waiting", "next_run", next.Format(time.RFC3339))

			select {
			case <-ctx.Done():
				logging.Info(ctx, s.logger, "scheduler stopped")
				return
			case <-s.done:
				logging.Info(ctx, s.logger, "scheduler stopped")
				return
			case <-s.after(next.Sub(now)):
				err := s.RunOnce(ctx)
				if s.onResult != nil {
					s.onResult(err)
				}
			}
		}
	}()
}

// Stop halts the loop.
func (s *Scheduler) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// RunOnce builds today's report and delivers it unless the ledger shows it was already posted.
// A failed delivery releases the claim so a later attempt can retry.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	start := s.now()
	date := timeutil.FormatDate(start.In(s.loc))
	s.recordAttempt(start)

	claimed, err := s.ledger.Claim(ctx, date)
	if err != nil {
		s.recordFailure(err, start)
		logging.Error(ctx, s.logger, "delivery ledger unavailable", err, logging.FieldDate, date)
		return err
	}
	if !claimed {
		s.metrics.RecordDelivery(metrics.OutcomeSkipped, 0)
		logging.Info(ctx, s.logger, "report already delivered", logging.FieldDate, date)
		return ErrAlreadyDelivered
	}

	rep := s.builder.Build(ctx)
	if err := s.sink.Deliver(ctx, rep.Text()); err != nil {
		if releaseErr := s.ledger.Release(ctx, date); releaseErr != nil {
			logging.Error(ctx, s.logger, "release delivery claim failed", releaseErr, logging.FieldDate, date)
		}
		s.metrics.RecordDelivery(metrics.OutcomeFailed, time.Since(start))
		s.recordFailure(err, start)
		logging.Error(ctx, s.logger, "report delivery failed", err,
			logging.FieldDate, date,
			logging.FieldRunID, rep.RunID,
		)
		return err
	}

	s.metrics.RecordDelivery(metrics.OutcomeOK, time.Since(start))
	s.recordSuccess(start, date)
	logging.Info(ctx, s.logger, "report delivered",
		logging.FieldDate, date,
		logging.FieldRunID, rep.RunID,
		logging.FieldCount, len(rep.Failed()),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// restoreDelivered seeds LastDeliveredDate from the ledger so a restart after
// today's post reports it instead of an empty status.
func (s *Scheduler) restoreDelivered(ctx context.Context) {
	date := timeutil.FormatDate(s.now().In(s.loc))
	delivered, err := s.ledger.Delivered(ctx, date)
	if err != nil {
		logging.Warn(ctx, s.logger, "delivery ledger lookup failed", logging.FieldDate, date, "error", err)
		return
	}
	if !delivered {
		return
	}
	s.statusMu.Lock()
	s.status.LastDeliveredDate = date
	s.statusMu.Unlock()
	logging.Info(ctx, s.logger, "report already delivered today", logging.FieldDate, date)
}

func (s *Scheduler) setNextRun(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.NextRun = at
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time, date string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
	s.status.LastDeliveredDate = date
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
