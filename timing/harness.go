package timing

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultMinTrials is the minimum number of timed trials.
	DefaultMinTrials = 1

	// DefaultSlack is the allowed drift of the average, in seconds.
	DefaultSlack = 1.0
)

// Clock supplies timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Harness times an operation until its average converges.
//
// A Harness is not safe for concurrent use.
type Harness struct {
	minTrials int
	slack     float64
	clock     Clock
	logger    *slog.Logger

	avg   float64
	sum   float64
	total int
}

// Option configures a Harness.
type Option func(*Harness)

// WithMinTrials sets the minimum number of timed trials.
func WithMinTrials(n int) Option {
	return func(h *Harness) { h.minTrials = n }
}

// WithSlack sets the allowed drift of the average, in seconds.
func WithSlack(s float64) Option {
	return func(h *Harness) { h.slack = s }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithLogger logs each trial at debug level and each result at info level.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a harness with DefaultMinTrials and DefaultSlack unless
// configured otherwise.
func New(opts ...Option) *Harness {
	h := &Harness{
		minTrials: DefaultMinTrials,
		slack:     DefaultSlack,
		clock:     systemClock{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetMinimumTotal sets the minimum number of timed trials.
func (h *Harness) SetMinimumTotal(n int) { h.minTrials = n }

// SetSlack sets the allowed drift of the average, in seconds.
func (h *Harness) SetSlack(s float64) { h.slack = s }

// Run times fn until the average converges.
//
// fn runs once untimed first. The loop then always performs at least one
// timed trial, even when the minimum is zero or negative. A panic in fn
// propagates to the caller. Run may never return if the average never
// settles within the slack.
func (h *Harness) Run(fn func()) {
	h.sum = 0
	h.total = 0

	fn()

	for {
		prev := h.avg

		start := h.clock.Now()
		fn()
		elapsed := h.clock.Now().Sub(start).Seconds()

		h.sum += elapsed
		h.total++
		h.avg = h.sum / float64(h.total)

		h.logger.Debug("trial",
			"trial", h.total,
			"elapsed", elapsed,
			"avg", h.avg,
		)

		if !h.unsettled(prev) && h.total >= h.minTrials {
			break
		}
	}

	h.logger.Info("timing converged",
		"avg", h.avg,
		"trials", h.total,
	)
}

// unsettled reports whether the average moved by more than the slack.
func (h *Harness) unsettled(prev float64) bool {
	return prev < h.avg-h.slack || prev > h.avg+h.slack
}

// Func returns fn wrapped so that calling it runs h on fn. This lets one
// harness time another.
func (h *Harness) Func(fn func()) func() {
	return func() { h.Run(fn) }
}

// Average returns the converged average in seconds.
func (h *Harness) Average() float64 { return h.avg }

// AverageDuration returns the converged average as a Duration.
func (h *Harness) AverageDuration() time.Duration {
	return time.Duration(h.avg * float64(time.Second))
}

// Total returns the number of timed trials of the last Run.
func (h *Harness) Total() int { return h.total }

// Summary returns the result line, e.g. "Averaged 0.0125 Over 8 Trials.".
func (h *Harness) Summary() string {
	return fmt.Sprintf("Averaged %g Over %d Trials.", h.avg, h.total)
}

// PrintResults writes Summary and a newline to w.
func (h *Harness) PrintResults(w io.Writer) error {
	_, err := fmt.Fprintln(w, h.Summary())
	return err
}
