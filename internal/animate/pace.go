package animate

import (
	"time"

	"github.com/ensigniasec/report-repair/internal/search"
)

const (
	// DefaultBaseline is the frame interval at pace 1.0.
	DefaultBaseline = 250 * time.Millisecond
	// DefaultDecay is applied to the pace on every k advance.
	DefaultDecay = 0.9
)

// Pace is the speed multiplier applied to the baseline frame interval. It
// shrinks while k scans forward and snaps back to 1.0 when i or j move.
type Pace struct {
	value float64
	decay float64
}

func NewPace(decay float64) Pace {
	return Pace{value: 1.0, decay: decay}
}

func (p Pace) Value() float64 { return p.value }

// Apply updates the pace for a step's pace change.
func (p *Pace) Apply(c search.PaceChange) {
	switch c {
	case search.PaceDecay:
		p.value *= p.decay
	case search.PaceReset:
		p.value = 1.0
	case search.PaceKeep:
	}
}

// Scale returns baseline scaled by the current pace.
func (p Pace) Scale(baseline time.Duration) time.Duration {
	return time.Duration(float64(baseline) * p.value)
}
