package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/playback"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Eighth blocks from empty to full.
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBars draws bars bottom-aligned in rows lines, one column per bar with
// a gap between columns. Heights scale against max.
func RenderBars(bars playback.Bars, rows, max int) string {
	if len(bars) == 0 || rows <= 0 {
		return ""
	}
	if max <= 0 {
		max = 1
	}

	styles := make(map[string]lipgloss.Style)
	style := func(color string) lipgloss.Style {
		s, ok := styles[color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = s
		}
		return s
	}

	eighths := make([]int, len(bars))
	for i, b := range bars {
		eighths[i] = b.Height * rows * 8 / max
		if b.Height > 0 && eighths[i] == 0 {
			eighths[i] = 1
		}
	}

	var sb strings.Builder
	for row := rows - 1; row >= 0; row-- {
		for i, b := range bars {
			fill := eighths[i] - row*8
			if fill < 0 {
				fill = 0
			} else if fill > 8 {
				fill = 8
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(style(b.Color).Render(string(blocks[fill])))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ProgressBar renders a progress bar of width cells.
func ProgressBar(percent float64, width int, color lipgloss.Color) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}
