package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/report-repair/internal/animate"
	"github.com/ensigniasec/report-repair/internal/board"
	"github.com/ensigniasec/report-repair/internal/config"
	"github.com/ensigniasec/report-repair/internal/input"
	"github.com/ensigniasec/report-repair/internal/search"
)

// Result is what the user saw when the program exited.
type Result struct {
	Outcome  search.Outcome
	Finished bool
}

// Run starts the Bubble Tea program on the title screen and blocks until the
// user quits.
func Run(ctx context.Context, set input.Set, cfg config.Config) (Result, error) {
	d := animate.NewDriver(search.NewMachine(set),
		animate.WithBaseline(cfg.FrameInterval),
		animate.WithDecay(cfg.PaceDecay),
	)
	model := NewModel(d, board.New(set), cfg.CellsPerColumn)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	if err := fm.Err(); err != nil {
		return Result{}, err
	}
	out, finished := fm.Outcome()
	return Result{Outcome: out, Finished: finished}, nil
}
