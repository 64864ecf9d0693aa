//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package animate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/report-repair/internal/input"
	"github.com/ensigniasec/report-repair/internal/search"
)

func newDriver(t *testing.T, values []int, opts ...Option) *Driver {
	t.Helper()
	set, err := input.New(values)
	require.NoError(t, err)
	return NewDriver(search.NewMachine(set), opts...)
}

var puzzleExample = []int{1721, 979, 366, 299, 675, 1456}

func TestPace_DecayAndReset(t *testing.T) {
	p := NewPace(0.9)
	assert.InDelta(t, 1.0, p.Value(), 1e-12)

	p.Apply(search.PaceDecay)
	p.Apply(search.PaceDecay)
	p.Apply(search.PaceKeep)
	assert.InDelta(t, 0.81, p.Value(), 1e-12)
	assert.InDelta(t, float64(DefaultBaseline)*0.81, float64(p.Scale(DefaultBaseline)), 2)

	p.Apply(search.PaceReset)
	assert.InDelta(t, 1.0, p.Value(), 1e-12)
}

func TestDriver_TickPaceFollowsSteps(t *testing.T) {
	d := newDriver(t, puzzleExample)

	wantPace := []float64{1, 1, 0.9, 0.9, 0.81, 0.81, 1, 1, 0.9, 0.9, 1, 1, 1, 1, 1}
	for n, want := range wantPace {
		fr, err := d.Tick()
		require.NoError(t, err)
		assert.Equal(t, n+1, fr.Tick)
		assert.InDelta(t, want, fr.Pace, 1e-12, "tick %d", n+1)
		assert.InDelta(t, float64(DefaultBaseline)*want, float64(fr.Next), 2, "tick %d", n+1)
		assert.Equal(t, n == len(wantPace)-1, fr.Done, "tick %d", n+1)
	}
	assert.True(t, d.Done())

	_, err := d.Tick()
	require.ErrorIs(t, err, search.ErrTerminal)
}

func TestDriver_RunImmediate(t *testing.T) {
	d := newDriver(t, puzzleExample, WithBaseline(100*time.Millisecond))
	s := &ImmediateScheduler{}

	var frames []Frame
	out, err := d.Run(context.Background(), s, RendererFunc(func(fr Frame) error {
		frames = append(frames, fr)
		return nil
	}))
	require.NoError(t, err)

	assert.True(t, out.Solved)
	assert.Equal(t, search.Cursor{I: 1, J: 2, K: 3}, out.Cursor)
	require.Len(t, frames, 15)
	assert.True(t, frames[len(frames)-1].Done)
	for _, fr := range frames[:len(frames)-1] {
		assert.False(t, fr.Done)
	}
	// The first tick waits one interval; no tick is scheduled after the terminal frame.
	assert.Equal(t, 15, s.Calls())

	var want time.Duration = 100 * time.Millisecond
	for _, fr := range frames[:len(frames)-1] {
		want += fr.Next
	}
	assert.Equal(t, want, s.Elapsed())
}

func TestDriver_RunExhausted(t *testing.T) {
	d := newDriver(t, []int{1, 2, 3, 4})
	out, err := d.Run(context.Background(), &ImmediateScheduler{}, RendererFunc(func(Frame) error { return nil }))
	require.NoError(t, err)
	assert.False(t, out.Solved)
	assert.Equal(t, search.ReasonKExhausted, out.Reason)
}

func TestDriver_RunStopsOnRenderError(t *testing.T) {
	boom := errors.New("boom")
	d := newDriver(t, puzzleExample)
	s := &ImmediateScheduler{}

	_, err := d.Run(context.Background(), s, RendererFunc(func(fr Frame) error {
		if fr.Tick == 3 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, s.Calls())
	assert.False(t, d.Done())
}

func TestDriver_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newDriver(t, puzzleExample)
	rendered := 0
	_, err := d.Run(ctx, &ImmediateScheduler{}, RendererFunc(func(Frame) error {
		rendered++
		return nil
	}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rendered)
}

func TestDriver_RunTimerScheduler(t *testing.T) {
	d := newDriver(t, []int{100, 300, 1620}, WithBaseline(time.Millisecond))

	ticks := 0
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := d.Run(ctx, TimerScheduler{}, RendererFunc(func(Frame) error {
		ticks++
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, out.Solved)
	assert.Equal(t, 2, ticks)
}

func TestDriver_RunCanceledDuringRenderWaitsForTick(t *testing.T) {
	d := newDriver(t, puzzleExample, WithBaseline(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var returned atomic.Bool
	var rendersAfterReturn, renders atomic.Int32
	_, err := d.Run(ctx, TimerScheduler{}, RendererFunc(func(fr Frame) error {
		if returned.Load() {
			rendersAfterReturn.Add(1)
		}
		renders.Add(1)
		if fr.Tick == 1 {
			cancel()
			time.Sleep(20 * time.Millisecond)
		}
		return nil
	}))
	returned.Store(true)
	require.ErrorIs(t, err, context.Canceled)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), renders.Load())
	assert.Zero(t, rendersAfterReturn.Load())
	assert.Equal(t, 1, d.machine.Steps())
}

func TestDriver_RunCanceledStopsPendingTimer(t *testing.T) {
	d := newDriver(t, puzzleExample, WithBaseline(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	rendered := 0
	_, err := d.Run(ctx, TimerScheduler{}, RendererFunc(func(Frame) error {
		rendered++
		return nil
	}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rendered)
	assert.Zero(t, d.machine.Steps())
}

func TestTimerScheduler_StopPreventsCallback(t *testing.T) {
	var ran atomic.Bool
	stop := TimerScheduler{}.ScheduleOnce(time.Hour, func() { ran.Store(true) })
	assert.True(t, stop())
	assert.False(t, ran.Load())
}

func TestImmediateScheduler_NestedCallsRunInOrder(t *testing.T) {
	s := &ImmediateScheduler{}
	var order []int
	s.ScheduleOnce(time.Second, func() {
		order = append(order, 1)
		s.ScheduleOnce(time.Second, func() { order = append(order, 3) })
		order = append(order, 2)
	})
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 2*time.Second, s.Elapsed())
}
