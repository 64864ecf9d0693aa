package search

// State is a node of the search state machine.
type State int

const (
	Start State = iota
	CheckBase
	CheckSum
	AdvanceI
	AdvanceJ
	AdvanceK
	Win
	Exhausted
)

func (s State) String() string {
	switch s {
	case Start:
		return "START"
	case CheckBase:
		return "CHECK_BASE"
	case CheckSum:
		return "CHECK_SUM"
	case AdvanceI:
		return "ADVANCE_I"
	case AdvanceJ:
		return "ADVANCE_J"
	case AdvanceK:
		return "ADVANCE_K"
	case Win:
		return "WIN"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further steps follow s.
func (s State) Terminal() bool { return s == Win || s == Exhausted }

// Cursor is the triple of indices under comparison. I < J < K always holds.
type Cursor struct {
	I, J, K int
}

// PaceChange tells the animation driver how a step affects the frame pace.
type PaceChange int

const (
	PaceKeep PaceChange = iota
	PaceDecay
	PaceReset
)

// Reason explains why a search was exhausted.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonKExhausted: the sum was still below target with k on the last index.
	ReasonKExhausted
	// ReasonIExhausted: no room left to move i forward.
	ReasonIExhausted
	// ReasonBaseOvershoot: the freshly reset triple (i, i+1, i+2) already exceeds target.
	ReasonBaseOvershoot
)

func (r Reason) String() string {
	switch r {
	case ReasonKExhausted:
		return "k exhausted"
	case ReasonIExhausted:
		return "i exhausted"
	case ReasonBaseOvershoot:
		return "base overshoot"
	default:
		return ""
	}
}
