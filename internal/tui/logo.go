package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // immutable artwork.
var treeLogo = []string{
	"        |        ",
	"       \\|/       ",
	"      --*--      ",
	"       >o<       ",
	"      >O<<<      ",
	"     >>o>>*<     ",
	"    >o<<<o<<<    ",
	"   >>@>*<<O<<<   ",
	"  >o>>@>>>o>o<<  ",
	" >*>>*<o<@<o<<<< ",
	">o>o<<<O<*>>*>>O<",
	"   _ __| |__ _   ",
}

func treeColor(ch rune) lipgloss.Color {
	switch ch {
	case '-', '|', '/', '\\', '*':
		return colorYellow
	case '<', '>':
		return colorGreen
	case 'o':
		return colorOrange
	case '_', '@':
		return colorRed
	case 'O':
		return colorBlue
	default:
		return colorWhite
	}
}

func renderLogo() string {
	var b strings.Builder
	for n, line := range treeLogo {
		for _, ch := range line {
			if ch == ' ' {
				b.WriteRune(ch)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(treeColor(ch)).Render(string(ch)))
		}
		if n < len(treeLogo)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
