package compare

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/pterm/pterm"
)

// Reporter records failed checks and writes a diagnostic for each one.
//
// A Reporter may be shared between testers (see WithReporter) to collect
// every failure of a larger check in one place. It is safe for concurrent use.
type Reporter struct {
	mu       sync.Mutex
	failures []*CheckError

	w      io.Writer
	color  bool
	tb     testing.TB
	logger *slog.Logger
}

// Option configures the reporter used by a Tester or TriCompare call.
type Option func(*reporterConfig)

type reporterConfig struct {
	reporter *Reporter
	w        io.Writer
	color    bool
	tb       testing.TB
	logger   *slog.Logger
}

// WithWriter sends diagnostics to w instead of os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *reporterConfig) { c.w = w }
}

// WithColor enables or disables red diagnostics. Enabled by default.
func WithColor(enabled bool) Option {
	return func(c *reporterConfig) { c.color = enabled }
}

// WithTB additionally reports each failure through t.Errorf.
//
// The file:line prefix go test prints for these messages points inside this
// package; the call site is the FILE and LINE carried in the message itself.
func WithTB(t testing.TB) Option {
	return func(c *reporterConfig) { c.tb = t }
}

// WithLogger logs each failure at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *reporterConfig) { c.logger = l }
}

// WithReporter records failures in r. Other options are ignored.
func WithReporter(r *Reporter) Option {
	return func(c *reporterConfig) { c.reporter = r }
}

// Silent discards diagnostics; failures are still recorded.
func Silent() Option {
	return WithWriter(io.Discard)
}

// NewReporter creates a reporter writing to os.Stderr unless configured otherwise.
func NewReporter(opts ...Option) *Reporter {
	return newReporter(opts)
}

func newReporter(opts []Option) *Reporter {
	cfg := reporterConfig{w: os.Stderr, color: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reporter != nil {
		return cfg.reporter
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}
	return &Reporter{
		w:      cfg.w,
		color:  cfg.color,
		tb:     cfg.tb,
		logger: cfg.logger,
	}
}

// Failures returns the failures recorded so far, oldest first.
func (r *Reporter) Failures() []*CheckError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*CheckError(nil), r.failures...)
}

// Reset forgets recorded failures.
func (r *Reporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = nil
}

// fail locates the call site, records err and writes its diagnostic. The
// write and the TB report happen under the lock so concurrent failures on a
// shared reporter produce whole, ordered blocks.
func (r *Reporter) fail(err *CheckError) {
	err.File, err.Line = callSite()

	r.logger.Debug("check failed",
		"code", err.Code,
		"expr", err.Expr,
		"file", err.File,
		"line", err.Line,
	)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)

	fmt.Fprint(r.w, FormatFailure(err, r.color))
	if r.tb != nil {
		r.tb.Errorf("%s\n       FILE: %s\n       LINE: %d", err.Error(), err.File, err.Line)
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var failureStyle = pterm.NewStyle(pterm.FgRed)

// FormatFailure renders the diagnostic block for err.
func FormatFailure(err *CheckError, color bool) string {
	text := fmt.Sprintf("FAILED CHECK - %s\n       FILE: %s\n       LINE: %d", err.Expr, err.File, err.Line)
	if color {
		text = failureStyle.Sprint(text)
	}
	return text + "\n"
}

// pkgPath is the import path of this package, used to skip its own frames.
var pkgPath = reflect.TypeFor[Reporter]().PkgPath()

// callSite returns the first stack frame outside this package. Frames from
// this package's own _test.go files count as outside so tests see their
// own line numbers.
func callSite() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !inPackage(frame.Function) || strings.HasSuffix(frame.File, "_test.go") {
			return frame.File, frame.Line
		}
		if !more {
			break
		}
	}
	return "???", 0
}

func inPackage(function string) bool {
	rest, ok := strings.CutPrefix(function, pkgPath)
	return ok && strings.HasPrefix(rest, ".")
}
