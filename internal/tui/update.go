package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/report-repair/internal/search"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		if x.gen != m.gen || m.phase != PhaseRunning {
			return m, nil
		}
		m.advance()
		gauge := m.animateGauge()
		if m.phase != PhaseRunning {
			return m, gauge
		}
		return m, tea.Batch(tickAfter(m.last.Next, m.gen), gauge)

	case gaugeFrameMsg:
		m.gauge.step()
		if m.gauge.settled() {
			m.gaugeAnimating = false
			return m, nil
		}
		return m, gaugeFrame()

	case spinner.TickMsg:
		if m.phase != PhaseRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(x)
		return m, cmd
	}

	return m, nil
}

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if m.phase != PhaseTitle {
			return m, nil
		}
		m.phase = PhaseRunning
		return m, tea.Batch(tickAfter(m.driver.Interval(), m.gen), m.spinner.Tick)

	case key.Matches(msg, m.keys.Pause):
		switch m.phase {
		case PhaseRunning:
			m.phase = PhasePaused
			m.gen++
			return m, nil
		case PhasePaused:
			m.phase = PhaseRunning
			m.gen++
			return m, tea.Batch(tickAfter(m.driver.Interval(), m.gen), m.spinner.Tick)
		case PhaseTitle, PhaseDone:
		}
		return m, nil

	case key.Matches(msg, m.keys.Step):
		if m.phase != PhasePaused {
			return m, nil
		}
		m.advance()
		return m, m.animateGauge()
	}

	return m, nil
}

// advance runs one driver tick and folds it into the board.
func (m *Model) advance() {
	fr, err := m.driver.Tick()
	if err != nil {
		m.err = err
		m.phase = PhaseDone
		return
	}
	if err := m.board.Apply(fr.Step.Events); err != nil {
		m.err = err
		m.phase = PhaseDone
		return
	}
	m.last = fr
	for _, ev := range fr.Step.Events {
		if s, ok := ev.(search.Sum); ok {
			m.gauge.aim(float64(s.Total) / float64(s.Target))
		}
	}
	if fr.Done {
		m.phase = PhaseDone
	}
}

// animateGauge starts the gauge frame loop unless it is running or idle.
func (m *Model) animateGauge() tea.Cmd {
	if m.gaugeAnimating || m.gauge.settled() {
		return nil
	}
	m.gaugeAnimating = true
	return gaugeFrame()
}

// searchProgress is how far i has moved through the positions it can take.
func (m Model) searchProgress() float64 {
	if m.phase == PhaseDone {
		return 1
	}
	span := m.board.Len() - 3
	if span <= 0 {
		return 0
	}
	return float64(m.driver.Machine().Cursor().I) / float64(span)
}
