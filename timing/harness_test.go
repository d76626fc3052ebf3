package timing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/opcheck/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	h := New()
	assert.Equal(t, DefaultMinTrials, h.minTrials)
	assert.Equal(t, DefaultSlack, h.slack)
	assert.Equal(t, 0, h.Total())
	assert.Equal(t, 0.0, h.Average())
}

func TestRun_MinTrials(t *testing.T) {
	clock := testutil.NewStepClock(10 * time.Millisecond)
	h := New(WithClock(clock), WithMinTrials(5), WithSlack(1e-9))

	calls := 0
	h.Run(func() { calls++ })

	assert.Equal(t, 5, h.Total())
	assert.InDelta(t, 0.010, h.Average(), 1e-9)
	assert.Equal(t, 6, calls, "one untimed warm-up plus five trials")
	assert.Equal(t, 10, clock.Calls())
}

func TestRun_SingleTrialWithDefaultSlack(t *testing.T) {
	clock := testutil.NewStepClock(10 * time.Millisecond)
	h := New(WithClock(clock))

	h.Run(func() {})

	assert.Equal(t, 1, h.Total())
	assert.InDelta(t, 0.010, h.Average(), 1e-12)
}

func TestRun_NonPositiveMinTrialsStillTimesOnce(t *testing.T) {
	for _, n := range []int{0, -3} {
		clock := testutil.NewStepClock(time.Millisecond)
		h := New(WithClock(clock), WithMinTrials(n))

		h.Run(func() {})
		assert.Equal(t, 1, h.Total(), "minTrials=%d", n)
	}
}

func TestRun_NoiseExceedingSlackRunsLonger(t *testing.T) {
	// Trials alternate between 100ms and two 1ms samples.
	clock := testutil.NewStepClock(time.Millisecond, 100*time.Millisecond, time.Millisecond)
	h := New(WithClock(clock), WithMinTrials(1), WithSlack(0.001))

	h.Run(func() {})

	assert.Greater(t, h.Total(), 10)
	assert.Greater(t, h.Average(), 0.001)
	assert.Less(t, h.Average(), 0.1)
}

func TestRun_ResetsBetweenRuns(t *testing.T) {
	clock := testutil.NewStepClock(500 * time.Millisecond)
	h := New(WithClock(clock), WithMinTrials(3))

	h.Run(func() {})
	require.Equal(t, 3, h.Total())

	h.SetMinimumTotal(2)
	h.Run(func() {})
	assert.Equal(t, 2, h.Total())
	assert.Equal(t, 0.5, h.Average())
}

func TestRun_PanicPropagates(t *testing.T) {
	h := New(WithClock(testutil.NewStepClock(time.Millisecond)))

	assert.PanicsWithValue(t, "boom", func() {
		h.Run(func() { panic("boom") })
	})
}

func TestRun_Layered(t *testing.T) {
	clock := testutil.NewStepClock(time.Second)
	inner := New(WithClock(clock), WithMinTrials(3))
	outer := New(WithClock(clock), WithMinTrials(2))

	outer.Run(inner.Func(func() {}))

	assert.Equal(t, 3, inner.Total())
	assert.Equal(t, 1.0, inner.Average())

	// Each outer trial spans its own two ticks plus the inner harness's six.
	assert.Equal(t, 2, outer.Total())
	assert.Equal(t, 7.0, outer.Average())
}

func TestSetters(t *testing.T) {
	h := New()
	h.SetMinimumTotal(9)
	h.SetSlack(0.25)

	assert.Equal(t, 9, h.minTrials)
	assert.Equal(t, 0.25, h.slack)
}

func TestSummary(t *testing.T) {
	clock := testutil.NewStepClock(500 * time.Millisecond)
	h := New(WithClock(clock), WithMinTrials(3))
	h.Run(func() {})

	assert.Equal(t, "Averaged 0.5 Over 3 Trials.", h.Summary())
	assert.Equal(t, 500*time.Millisecond, h.AverageDuration())

	var buf bytes.Buffer
	require.NoError(t, h.PrintResults(&buf))
	assert.Equal(t, "Averaged 0.5 Over 3 Trials.\n", buf.String())
}

func TestRun_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := New(WithClock(testutil.NewStepClock(time.Millisecond)), WithMinTrials(2), WithLogger(logger))
	h.Run(func() {})

	out := logs.String()
	assert.Equal(t, 2, strings.Count(out, "msg=trial"))
	assert.Contains(t, out, "timing converged")
	assert.Contains(t, out, "trials=2")
}

func TestBind(t *testing.T) {
	clock := testutil.NewStepClock(time.Millisecond)
	h := New(WithClock(clock), WithMinTrials(2))

	var got []string
	h.Run(Bind2(func(s string, n int) {
		got = append(got, strings.Repeat(s, n))
	}, "ab", 2))

	// warm-up plus two trials
	assert.Equal(t, []string{"abab", "abab", "abab"}, got)

	sum := 0
	Bind1(func(n int) { sum += n }, 4)()
	Bind3(func(a, b, c int) { sum += a * b * c }, 1, 2, 3)()
	assert.Equal(t, 10, sum)

	n := 0
	Discard(func() int { n++; return n })()
	assert.Equal(t, 1, n)
}

func TestRun_WallClock(t *testing.T) {
	h := New(WithMinTrials(5))

	h.Run(func() { time.Sleep(time.Millisecond) })

	assert.Equal(t, 5, h.Total())
	assert.GreaterOrEqual(t, h.AverageDuration(), time.Millisecond)
}
