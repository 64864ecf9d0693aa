package search

import "fmt"

// Role is the highlight applied to a value by the search.
type Role int

const (
	Neutral Role = iota
	Primary
	Secondary
	Tertiary
)

func (r Role) String() string {
	switch r {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return "neutral"
	}
}

// Event is emitted by a transition for the presentation layer.
// Concrete types: Highlight, Sum, Product, Terminal.
type Event interface {
	event()
}

// Highlight changes the role of the value at Index.
type Highlight struct {
	Index int
	Role  Role
}

// Sum reports the sum of the current triple against the target.
type Sum struct {
	Operands [3]int
	Total    int
	Target   int
}

// Product reports the product of the current triple.
type Product struct {
	Operands [3]int
	Total    int
}

// Terminal is emitted once, when the machine enters WIN or EXHAUSTED.
type Terminal struct {
	Outcome Outcome
}

func (Highlight) event() {}
func (Sum) event()       {}
func (Product) event()   {}
func (Terminal) event()  {}

// Outcome is the final result of a search.
type Outcome struct {
	Solved  bool
	Cursor  Cursor
	Values  [3]int
	Product int
	Reason  Reason
}

func (o Outcome) String() string {
	if o.Solved {
		return fmt.Sprintf("solved: %d + %d + %d = %d, product %d (indices %d,%d,%d)",
			o.Values[0], o.Values[1], o.Values[2], Target, o.Product, o.Cursor.I, o.Cursor.J, o.Cursor.K)
	}
	return fmt.Sprintf("no solution found (%s at %d,%d,%d)", o.Reason, o.Cursor.I, o.Cursor.J, o.Cursor.K)
}
