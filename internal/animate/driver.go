package animate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/report-repair/internal/search"
)

// Frame is what one tick produced.
type Frame struct {
	Tick    int
	Step    search.Step
	Pace    float64
	Next    time.Duration
	Done    bool
	Outcome search.Outcome
}

// Renderer consumes frames, one per tick.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame) error

func (f RendererFunc) Render(fr Frame) error { return f(fr) }

// Option configures a Driver.
type Option func(*Driver)

// WithBaseline sets the frame interval at pace 1.0.
func WithBaseline(d time.Duration) Option {
	return func(dr *Driver) { dr.baseline = d }
}

// WithDecay sets the pace multiplier applied on each k advance.
func WithDecay(decay float64) Option {
	return func(dr *Driver) { dr.pace = NewPace(decay) }
}

// Driver paces a search machine, one step per tick.
type Driver struct {
	machine  *search.Machine
	baseline time.Duration
	pace     Pace
	ticks    int
	done     bool
}

func NewDriver(m *search.Machine, opts ...Option) *Driver {
	d := &Driver{
		machine:  m,
		baseline: DefaultBaseline,
		pace:     NewPace(DefaultDecay),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval is the delay before the next tick at the current pace.
func (d *Driver) Interval() time.Duration { return d.pace.Scale(d.baseline) }

func (d *Driver) Pace() float64 { return d.pace.Value() }

func (d *Driver) Done() bool { return d.done }

func (d *Driver) Machine() *search.Machine { return d.machine }

// Tick runs one machine step and updates the pace.
func (d *Driver) Tick() (Frame, error) {
	st, err := d.machine.Step()
	if err != nil {
		return Frame{}, fmt.Errorf("tick %d: %w", d.ticks+1, err)
	}
	d.ticks++
	d.pace.Apply(st.Pace)
	fr := Frame{
		Tick: d.ticks,
		Step: st,
		Pace: d.pace.Value(),
		Next: d.Interval(),
		Done: st.To.Terminal(),
	}
	if fr.Done {
		d.done = true
		fr.Outcome, _ = d.machine.Outcome()
	}
	return fr, nil
}

type runResult struct {
	outcome search.Outcome
	err     error
}

// Run drives the machine to a terminal state through s, rendering every frame
// with r. The first tick fires one interval after Run is called. Each tick is
// scheduled only after the previous one has rendered. When ctx is canceled,
// Run stops the pending tick or waits for the running one, so r is never
// called after Run returns.
func (d *Driver) Run(ctx context.Context, s Scheduler, r Renderer) (search.Outcome, error) {
	results := make(chan runResult, 1)
	log := logrus.WithField("values", d.machine.Len())
	log.Debug("animation started")

	var (
		mu      sync.Mutex
		pending func() bool
		tick    func()
	)
	schedule := func(delay time.Duration) {
		stop := s.ScheduleOnce(delay, tick)
		mu.Lock()
		pending = stop
		mu.Unlock()
	}
	tick = func() {
		if err := ctx.Err(); err != nil {
			results <- runResult{err: err}
			return
		}
		fr, err := d.Tick()
		if err != nil {
			results <- runResult{err: err}
			return
		}
		if err := r.Render(fr); err != nil {
			results <- runResult{err: fmt.Errorf("render tick %d: %w", fr.Tick, err)}
			return
		}
		if fr.Done {
			log.WithField("ticks", fr.Tick).Debugf("animation finished: %s", fr.Outcome)
			results <- runResult{outcome: fr.Outcome}
			return
		}
		if err := ctx.Err(); err != nil {
			results <- runResult{err: err}
			return
		}
		schedule(fr.Next)
	}
	schedule(d.Interval())

	select {
	case res := <-results:
		return res.outcome, res.err
	case <-ctx.Done():
	}

	mu.Lock()
	stop := pending
	mu.Unlock()
	// A stale handle reports false; the live tick then sees ctx and sends.
	if stop != nil && stop() {
		return search.Outcome{}, ctx.Err()
	}
	res := <-results
	return res.outcome, res.err
}
