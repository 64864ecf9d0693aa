package search

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/report-repair/internal/input"
)

// Target is the sum the search is looking for.
const Target = 2020

// ErrTerminal is returned when stepping a machine that already finished.
var ErrTerminal = errors.New("search already finished")

// Step is the result of a single transition.
type Step struct {
	From   State
	To     State
	Cursor Cursor
	Events []Event
	Pace   PaceChange
}

// Transition performs one state transition over the sorted values. It has no
// side effects; the returned cursor and state replace the inputs.
func Transition(state State, cur Cursor, values []int) Step { //nolint:funlen // one case per state
	st := Step{From: state, To: state, Cursor: cur}
	last := len(values) - 1

	switch state {
	case Start:
		st.Events = highlightTriple(cur)
		st.To = CheckBase

	case CheckBase, CheckSum:
		a, b, c := values[cur.I], values[cur.J], values[cur.K]
		sum := a + b + c
		st.Events = []Event{
			Sum{Operands: [3]int{a, b, c}, Total: sum, Target: Target},
			Product{Operands: [3]int{a, b, c}, Total: a * b * c},
		}
		switch cmp := sum - Target; {
		case cmp < 0:
			st.To = AdvanceK
		case cmp > 0 && state == CheckBase:
			st.finish(values, false, ReasonBaseOvershoot)
		case cmp > 0:
			st.To = AdvanceJ
		default:
			st.finish(values, true, ReasonNone)
		}

	case AdvanceK:
		if cur.K == last {
			st.finish(values, false, ReasonKExhausted)
			return st
		}
		st.Cursor.K++
		st.Events = []Event{
			Highlight{Index: cur.K, Role: Neutral},
			Highlight{Index: st.Cursor.K, Role: Tertiary},
		}
		st.Pace = PaceDecay
		st.To = CheckSum

	case AdvanceJ:
		if cur.K == cur.J+1 {
			st.To = AdvanceI
			return st
		}
		st.Cursor.J++
		st.Cursor.K = st.Cursor.J + 1
		st.Events = []Event{
			Highlight{Index: cur.K, Role: Neutral},
			Highlight{Index: cur.J, Role: Neutral},
			Highlight{Index: st.Cursor.J, Role: Secondary},
			Highlight{Index: st.Cursor.K, Role: Tertiary},
		}
		st.Pace = PaceReset
		st.To = CheckSum

	case AdvanceI:
		if cur.I+3 > last {
			st.finish(values, false, ReasonIExhausted)
			return st
		}
		st.Cursor = Cursor{I: cur.I + 1, J: cur.I + 2, K: cur.I + 3}
		st.Events = append([]Event{
			Highlight{Index: cur.K, Role: Neutral},
			Highlight{Index: cur.J, Role: Neutral},
			Highlight{Index: cur.I, Role: Neutral},
		}, highlightTriple(st.Cursor)...)
		st.Pace = PaceReset
		st.To = CheckBase

	case Win, Exhausted:
	}
	return st
}

func (st *Step) finish(values []int, solved bool, reason Reason) {
	c := st.Cursor
	a, b, d := values[c.I], values[c.J], values[c.K]
	out := Outcome{
		Solved:  solved,
		Cursor:  c,
		Values:  [3]int{a, b, d},
		Product: a * b * d,
		Reason:  reason,
	}
	st.Events = append(st.Events, Terminal{Outcome: out})
	if solved {
		st.To = Win
	} else {
		st.To = Exhausted
	}
}

func highlightTriple(c Cursor) []Event {
	return []Event{
		Highlight{Index: c.I, Role: Primary},
		Highlight{Index: c.J, Role: Secondary},
		Highlight{Index: c.K, Role: Tertiary},
	}
}

// Machine runs Transition over a fixed input, one step per call.
type Machine struct {
	values  []int
	state   State
	cursor  Cursor
	outcome *Outcome
	steps   int
}

// NewMachine returns a machine in START with cursor (0,1,2).
func NewMachine(set input.Set) *Machine {
	return &Machine{
		values: set.Values(),
		state:  Start,
		cursor: Cursor{I: 0, J: 1, K: 2},
	}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Cursor() Cursor { return m.cursor }
func (m *Machine) Len() int       { return len(m.values) }
func (m *Machine) Steps() int     { return m.steps }

// Outcome returns the final outcome once the machine reached a terminal state.
func (m *Machine) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// Step advances the machine by exactly one transition.
func (m *Machine) Step() (Step, error) {
	if m.state.Terminal() {
		return Step{}, ErrTerminal
	}
	st := Transition(m.state, m.cursor, m.values)
	m.state, m.cursor = st.To, st.Cursor
	m.steps++

	for _, ev := range st.Events {
		t, ok := ev.(Terminal)
		if !ok {
			continue
		}
		out := t.Outcome
		m.outcome = &out
		if out.Reason == ReasonBaseOvershoot {
			// Every triple with a larger i also exceeds the target from here.
			logrus.WithFields(logrus.Fields{
				"i": out.Cursor.I, "j": out.Cursor.J, "k": out.Cursor.K,
				"sum": out.Values[0] + out.Values[1] + out.Values[2],
			}).Warn("search reached CHECK_BASE with sum above target")
		}
	}
	logrus.Debugf("step %d: %s -> %s at (%d,%d,%d)", m.steps, st.From, st.To, m.cursor.I, m.cursor.J, m.cursor.K)
	return st, nil
}

// Run steps the machine until it is terminal and returns the outcome.
func (m *Machine) Run() Outcome {
	for !m.state.Terminal() {
		if _, err := m.Step(); err != nil {
			break
		}
	}
	out, _ := m.Outcome()
	return out
}
