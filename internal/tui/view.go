package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/report-repair/internal/board"
	"github.com/ensigniasec/report-repair/internal/search"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}
	var content string
	if m.phase == PhaseTitle {
		content = renderTitle(m)
	} else {
		content = renderViewport(m)
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func renderTitle(m Model) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(eventTitle)
	day := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(dayTitle)
	button := lipgloss.NewStyle().Bold(true).Padding(0, 3).
		Foreground(colorBlack).Background(colorWhite).Render("Start")
	hint := lipgloss.NewStyle().Foreground(colorMuted).
		Render(fmt.Sprintf("%d values loaded • press enter to start", m.board.Len()))

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		renderLogo(),
		"",
		day,
		"",
		button,
		"",
		hint,
	)
}

func renderViewport(m Model) string {
	var b strings.Builder
	b.WriteString(renderStatusLine(m))
	b.WriteString("\n\n")
	b.WriteString(renderCells(m))
	b.WriteString("\n\n")

	sum, status := m.board.Sum()
	b.WriteString(renderCalcRow("+", sum, sumStyle(status)))
	b.WriteString("\n\n")
	b.WriteString(renderCalcRow("*", m.board.Product(), boxStyle(colorWhite)))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.searchProgress()))
	b.WriteString("\n")
	b.WriteString(m.gauge.view(gaugeWidth))
	b.WriteString("\n")

	if banner := renderOutcome(m); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderStatusLine(m Model) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(dayTitle)
	muted := lipgloss.NewStyle().Foreground(colorMuted)

	var state string
	switch m.phase {
	case PhaseRunning:
		state = m.spinner.View() + " " + m.driver.Machine().State().String()
	case PhasePaused:
		state = "⏸ paused at " + m.driver.Machine().State().String()
	case PhaseDone, PhaseTitle:
		state = m.driver.Machine().State().String()
	}
	c := m.driver.Machine().Cursor()
	detail := muted.Render(fmt.Sprintf("tick %d • (i,j,k)=(%d,%d,%d) • pace %.3f",
		m.last.Tick, c.I, c.J, c.K, m.driver.Pace()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", state, "  ", detail)
}

// cellsPerColumn shrinks the configured column height to the window.
func (m Model) cellsPerColumn() int {
	per := m.perColumn
	if m.height > 0 {
		if fit := m.height - listOverheadLines; fit > 0 && fit < per {
			per = fit
		}
	}
	return per
}

func renderCells(m Model) string {
	width := cellWidth(m.board)
	cols := m.board.Columns(m.cellsPerColumn())
	rendered := make([]string, 0, len(cols)*2)
	for n, col := range cols {
		lines := make([]string, 0, len(col))
		for _, idx := range col {
			lines = append(lines, renderCell(m.board.Cell(idx), width))
		}
		if n > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func cellWidth(b *board.Board) int {
	w := 1
	for _, c := range b.Cells() {
		w = max(w, len(strconv.Itoa(c.Value)))
	}
	return w + cellPadding
}

func renderCell(c board.Cell, width int) string {
	return cellStyle(c).Width(width).Align(lipgloss.Right).Render(strconv.Itoa(c.Value) + " ")
}

func cellStyle(c board.Cell) lipgloss.Style {
	switch c.Mark {
	case board.Solved:
		return boxStyle(colorGreen)
	case board.Failed:
		return boxStyle(colorRed)
	case board.Unmarked:
	}
	switch c.Role {
	case search.Primary:
		return boxStyle(colorCyan)
	case search.Secondary:
		return boxStyle(colorMagenta)
	case search.Tertiary:
		return boxStyle(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorWhite)
	}
}

func boxStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorBlack).Background(bg)
}

func sumStyle(s board.SumStatus) lipgloss.Style {
	switch s {
	case board.Above:
		return boxStyle(colorRed)
	case board.Equal:
		return boxStyle(colorGreen)
	default:
		return boxStyle(colorWhite)
	}
}

// renderCalcRow draws "a op b op c = total" with the operand boxes in the
// primary, secondary and tertiary colours.
func renderCalcRow(op string, row board.Row, total lipgloss.Style) string {
	if !row.Set {
		return lipgloss.NewStyle().Foreground(colorMuted).Render(fmt.Sprintf("_ %s _ %s _ = _", op, op))
	}
	pad := func(s lipgloss.Style, v int) string {
		return s.Padding(0, 1).Render(strconv.Itoa(v))
	}
	sym := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Padding(0, 1)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		pad(boxStyle(colorCyan), row.Operands[0]),
		sym.Render(op),
		pad(boxStyle(colorMagenta), row.Operands[1]),
		sym.Render(op),
		pad(boxStyle(colorYellow), row.Operands[2]),
		sym.Render("="),
		pad(total, row.Total),
	)
}

func renderOutcome(m Model) string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true).Render("error: " + m.err.Error())
	}
	out, ok := m.board.Outcome()
	if !ok {
		return ""
	}
	if out.Solved {
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Render("✓ " + out.String())
	}
	return lipgloss.NewStyle().Foreground(colorRed).Bold(true).Render("✗ " + out.String())
}
