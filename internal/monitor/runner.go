package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rjongens/dnswatch/internal/dnspod"
)

// RecordLister fetches the full record list of a domain. Implemented by
// dnspod.Client; tests substitute fakes.
type RecordLister interface {
	ListRecords(ctx context.Context, domain string) ([]dnspod.Record, error)
}

// Notifier delivers one rendered notification. Best effort: a returned
// error is logged by the Runner and never retried.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Journal records emitted change events for later inspection. Optional;
// write failures are logged and otherwise ignored.
type Journal interface {
	Record(ctx context.Context, domain string, ev ChangeEvent) error
}

// Status is a point-in-time view of the runner's counters, served by
// the management API.
type Status struct {
	StartTime      time.Time `json:"start_time"`
	Cycles         uint64    `json:"cycles"`
	FetchFailures  uint64    `json:"fetch_failures"`
	EventsEmitted  uint64    `json:"events_emitted"`
	NotifyFailures uint64    `json:"notify_failures"`
	LastCheck      time.Time `json:"last_check"`
	LastChange     time.Time `json:"last_change"`
	Initialized    bool      `json:"baseline_initialized"`
}

// RunnerConfig carries the collaborators and settings for a Runner.
type RunnerConfig struct {
	Logger   *slog.Logger
	Domain   string
	Names    []string
	Interval time.Duration
	Lister   RecordLister
	Notifier Notifier
	Journal  Journal // nil disables journaling
}

// Runner drives the fetch -> build -> detect -> notify cycle on a fixed
// interval. One cycle runs at a time on the loop goroutine; the mutex
// only exists so the management API can read Status and the baseline
// while the loop is running.
type Runner struct {
	logger    *slog.Logger
	domain    string
	monitored map[string]struct{}
	interval  time.Duration
	lister    RecordLister
	notifier  Notifier
	journal   Journal

	mu       sync.Mutex
	detector *Detector
	status   Status
}

// NewRunner creates a runner with an uninitialized baseline.
func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:    logger,
		domain:    cfg.Domain,
		monitored: NameSet(cfg.Names),
		interval:  cfg.Interval,
		lister:    cfg.Lister,
		notifier:  cfg.Notifier,
		journal:   cfg.Journal,
		detector:  NewDetector(),
		status:    Status{StartTime: time.Now()},
	}
}

// Status returns a copy of the runner's counters.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Baseline returns a deep copy of the current baseline snapshot, or
// false before the first successful cycle.
func (r *Runner) Baseline() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.detector.Baseline()
}

// Run performs one check immediately, then one per interval, until ctx
// is canceled. Fetch failures are recoverable and only skip the cycle;
// they never stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.CheckOnce(ctx); err != nil {
		r.logger.Error("record fetch failed, skipping cycle", "domain", r.domain, "err", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("monitor stopping")
			return nil
		case <-ticker.C:
			if err := r.CheckOnce(ctx); err != nil {
				r.logger.Error("record fetch failed, skipping cycle", "domain", r.domain, "err", err)
			}
		}
	}
}

// CheckOnce runs a single check cycle. It returns an error only when
// the record fetch failed; in that case the baseline is untouched and
// the comparison never ran. Notifier and journal failures are logged
// here and do not surface.
func (r *Runner) CheckOnce(ctx context.Context) error {
	r.logger.Debug("checking records", "domain", r.domain)

	records, err := r.lister.ListRecords(ctx, r.domain)
	if err != nil {
		r.mu.Lock()
		r.status.FetchFailures++
		r.mu.Unlock()
		return err
	}

	current := BuildSnapshot(records, r.monitored)

	r.mu.Lock()
	first := !r.detector.Initialized()
	events := r.detector.Detect(current)
	now := time.Now()
	r.status.Cycles++
	r.status.LastCheck = now
	r.status.Initialized = true
	r.status.EventsEmitted += uint64(len(events))
	if len(events) > 0 {
		r.status.LastChange = now
	}
	r.mu.Unlock()

	switch {
	case first:
		r.logger.Info("baseline initialized", "domain", r.domain, "subdomains", len(current))
	case len(events) == 0:
		r.logger.Debug("no record changes", "domain", r.domain)
	}

	for _, ev := range events {
		r.logger.Info("record change detected",
			"subdomain", ev.Name,
			"domain", r.domain,
			"old", len(ev.Old),
			"new", len(ev.New),
		)
		if err := r.notifier.Notify(ctx, FormatMessage(r.domain, ev)); err != nil {
			r.mu.Lock()
			r.status.NotifyFailures++
			r.mu.Unlock()
			r.logger.Error("notification failed", "subdomain", ev.Name, "err", err)
		}
		if r.journal != nil {
			if err := r.journal.Record(ctx, r.domain, ev); err != nil {
				r.logger.Error("journal write failed", "subdomain", ev.Name, "err", err)
			}
		}
	}
	return nil
}
