package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/report-repair/internal/animate"
	"github.com/ensigniasec/report-repair/internal/board"
	"github.com/ensigniasec/report-repair/internal/search"
)

// Phase is the screen the model is on.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseDone
)

// Model is the root Bubble Tea model.
type Model struct {
	driver    *animate.Driver
	board     *board.Board
	perColumn int

	phase Phase
	gen   int
	last  animate.Frame
	err   error

	progress progress.Model
	spinner  spinner.Model
	help     help.Model
	gauge    sumGauge

	width    int
	height   int
	quitting bool

	// ui state
	helpVisible    bool
	gaugeAnimating bool

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model on the title screen.
func NewModel(d *animate.Driver, b *board.Board, perColumn int) Model {
	if perColumn <= 0 {
		perColumn = board.DefaultPerColumn
	}
	return Model{
		driver:    d,
		board:     b,
		perColumn: perColumn,
		phase:     PhaseTitle,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
		gauge:     newSumGauge(),
		keys:      newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Phase() Phase { return m.phase }

// Outcome is set once the search reached a terminal state.
func (m Model) Outcome() (search.Outcome, bool) {
	if m.phase != PhaseDone || m.err != nil {
		return search.Outcome{}, false
	}
	return m.board.Outcome()
}

// Err is the error that stopped the animation, if any.
func (m Model) Err() error { return m.err }
