package board

import (
	"errors"
	"fmt"

	"github.com/ensigniasec/report-repair/internal/input"
	"github.com/ensigniasec/report-repair/internal/search"
)

// DefaultPerColumn is how many cells stack in one column.
const DefaultPerColumn = 20

// ErrIndexOutOfRange is returned for a highlight that names no cell.
var ErrIndexOutOfRange = errors.New("cell index out of range")

// Mark decorates cells once the search finished.
type Mark int

const (
	Unmarked Mark = iota
	Solved
	Failed
)

// Cell is one input value and its display state.
type Cell struct {
	Value int
	Role  search.Role
	Mark  Mark
}

// SumStatus compares the displayed sum with the target.
type SumStatus int

const (
	Below SumStatus = iota
	Equal
	Above
)

// Row is a calculation row: three operands and their sum or product.
type Row struct {
	Operands [3]int
	Total    int
	Set      bool
}

// Board is the display state of a search, updated only through Apply.
type Board struct {
	cells     []Cell
	sum       Row
	sumStatus SumStatus
	product   Row
	outcome   *search.Outcome
	applied   int
}

// New returns a board with one neutral cell per value of set.
func New(set input.Set) *Board {
	cells := make([]Cell, set.Len())
	for i := range cells {
		cells[i] = Cell{Value: set.At(i)}
	}
	return &Board{cells: cells}
}

// Apply folds events into the board in order.
func (b *Board) Apply(events []search.Event) error {
	for _, ev := range events {
		if err := b.apply(ev); err != nil {
			return err
		}
		b.applied++
	}
	return nil
}

func (b *Board) apply(ev search.Event) error {
	switch e := ev.(type) {
	case search.Highlight:
		if e.Index < 0 || e.Index >= len(b.cells) {
			return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, e.Index, len(b.cells))
		}
		b.cells[e.Index].Role = e.Role
	case search.Sum:
		b.sum = Row{Operands: e.Operands, Total: e.Total, Set: true}
		switch {
		case e.Total > e.Target:
			b.sumStatus = Above
		case e.Total == e.Target:
			b.sumStatus = Equal
		default:
			b.sumStatus = Below
		}
	case search.Product:
		b.product = Row{Operands: e.Operands, Total: e.Total, Set: true}
	case search.Terminal:
		out := e.Outcome
		b.outcome = &out
		mark := Failed
		if out.Solved {
			mark = Solved
		}
		for _, i := range []int{out.Cursor.I, out.Cursor.J, out.Cursor.K} {
			if i >= 0 && i < len(b.cells) {
				b.cells[i].Mark = mark
			}
		}
	default:
		return fmt.Errorf("unknown event %T", ev)
	}
	return nil
}

func (b *Board) Len() int { return len(b.cells) }

func (b *Board) Cell(i int) Cell { return b.cells[i] }

// Cells returns a copy of all cells.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) Sum() (Row, SumStatus) { return b.sum, b.sumStatus }

func (b *Board) Product() Row { return b.product }

// Applied is the number of events folded in so far.
func (b *Board) Applied() int { return b.applied }

// Outcome is set once a terminal event was applied.
func (b *Board) Outcome() (search.Outcome, bool) {
	if b.outcome == nil {
		return search.Outcome{}, false
	}
	return *b.outcome, true
}

// Columns lays cell indices out column-major, perColumn to a column.
func (b *Board) Columns(perColumn int) [][]int {
	if perColumn <= 0 {
		perColumn = DefaultPerColumn
	}
	var cols [][]int
	for start := 0; start < len(b.cells); start += perColumn {
		end := min(start+perColumn, len(b.cells))
		col := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			col = append(col, i)
		}
		cols = append(cols, col)
	}
	return cols
}
