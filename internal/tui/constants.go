package tui

import "github.com/charmbracelet/lipgloss"

const (
	eventTitle = "Advent of Code 2020"
	dayTitle   = "Day 1 - Report Repair"

	cellPadding    = 2
	columnGap      = 1
	progressWidth  = 40
	gaugeWidth     = 40
	gaugeCeiling   = 1.5
	gaugeFPS       = 30
	gaugeFrequency = 6.0
	gaugeDamping   = 0.8
	gaugeSettle    = 1e-3
	// listOverheadLines is header + two calculation rows + progress + gauge + footer.
	listOverheadLines = 12
)

// Box colours.
//
//nolint:gochecknoglobals // immutable style table.
var (
	colorCyan    = lipgloss.Color("14")
	colorMagenta = lipgloss.Color("13")
	colorYellow  = lipgloss.Color("11")
	colorGreen   = lipgloss.Color("10")
	colorRed     = lipgloss.Color("9")
	colorBlue    = lipgloss.Color("12")
	colorOrange  = lipgloss.Color("208")
	colorWhite   = lipgloss.Color("15")
	colorBlack   = lipgloss.Color("0")
	colorMuted   = lipgloss.Color("241")
)
