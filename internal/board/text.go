package board

import (
	"fmt"
	"io"

	"github.com/ensigniasec/report-repair/internal/animate"
	"github.com/ensigniasec/report-repair/internal/search"
)

// TextRenderer prints one line per comparison and a final outcome line.
type TextRenderer struct {
	w     io.Writer
	board *Board
	// Every also prints steps that only move the cursor.
	Every bool
}

func NewTextRenderer(w io.Writer, b *Board) *TextRenderer {
	return &TextRenderer{w: w, board: b}
}

// Render implements animate.Renderer.
func (r *TextRenderer) Render(fr animate.Frame) error {
	if err := r.board.Apply(fr.Step.Events); err != nil {
		return err
	}
	c := fr.Step.Cursor
	compared := false
	for _, ev := range fr.Step.Events {
		if _, ok := ev.(search.Sum); ok {
			compared = true
		}
	}
	switch {
	case compared:
		sum, status := r.board.Sum()
		prod := r.board.Product()
		if _, err := fmt.Fprintf(r.w, "%4d  (%d,%d,%d)  %d + %d + %d = %d %s %d  product %d\n",
			fr.Tick, c.I, c.J, c.K,
			sum.Operands[0], sum.Operands[1], sum.Operands[2], sum.Total, statusSymbol(status), search.Target, prod.Total); err != nil {
			return err
		}
	case r.Every:
		if _, err := fmt.Fprintf(r.w, "%4d  (%d,%d,%d)  %s -> %s  pace %.3f\n",
			fr.Tick, c.I, c.J, c.K, fr.Step.From, fr.Step.To, fr.Pace); err != nil {
			return err
		}
	}
	if fr.Done {
		if _, err := fmt.Fprintln(r.w, fr.Outcome); err != nil {
			return err
		}
	}
	return nil
}

func statusSymbol(s SumStatus) string {
	switch s {
	case Above:
		return ">"
	case Equal:
		return "="
	default:
		return "<"
	}
}
