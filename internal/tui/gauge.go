package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// sumGauge eases a bar toward sum/target so jumps between triples read as motion.
type sumGauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newSumGauge() sumGauge {
	return sumGauge{spring: harmonica.NewSpring(harmonica.FPS(gaugeFPS), gaugeFrequency, gaugeDamping)}
}

// aim sets the ratio the gauge moves toward, clamped to the drawable range.
func (g *sumGauge) aim(ratio float64) {
	g.target = min(max(ratio, 0), gaugeCeiling)
}

// step advances the spring by one frame of gaugeFPS.
func (g *sumGauge) step() {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
}

func (g sumGauge) settled() bool {
	return math.Abs(g.pos-g.target) < gaugeSettle && math.Abs(g.vel) < gaugeSettle
}

func (g sumGauge) view(width int) string {
	if width < 3 {
		width = 3
	}
	mark := int(float64(width) / gaugeCeiling)
	pos := min(max(g.pos, 0), gaugeCeiling)
	filled := int(pos / gaugeCeiling * float64(width))

	color := colorWhite
	switch {
	case g.target > 1:
		color = colorRed
	case g.target == 1:
		color = colorGreen
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == mark:
			b.WriteString(lipgloss.NewStyle().Foreground(colorGreen).Render("│"))
		case i < filled:
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Render("░"))
		}
	}
	return b.String()
}
