package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avik-so/lorenzlab/internal/analysis"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

func statLine(label string, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// StatsView renders a maxima summary block.
func StatsView(s analysis.Stats) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("z maxima"))
	sb.WriteRune('\n')
	sb.WriteString(statLine("count", fmt.Sprintf("%d", s.Count)))
	sb.WriteRune('\n')
	if s.Count > 0 {
		sb.WriteString(statLine("mean", fmt.Sprintf("%.4f", s.Mean)))
		sb.WriteRune('\n')
		sb.WriteString(statLine("stddev", fmt.Sprintf("%.4f", s.StdDev)))
		sb.WriteRune('\n')
		sb.WriteString(statLine("range", fmt.Sprintf("[%.4f, %.4f]", s.Min, s.Max)))
		sb.WriteRune('\n')
	}
	return sb.String()
}
