package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	activeNavStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	coachBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// statCard renders a labeled value box, the DashboardCard equivalent.
func statCard(title, value string, width int) string {
	body := fmt.Sprintf("%s\n%s",
		dimStyle.Render(title),
		headerStyle.Render(value))
	return cardBorderStyle.Width(width).Render(body)
}

// cardRow joins stat cards horizontally.
func cardRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderProgressBar draws a filled/empty bar for a 0-100 percentage.
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	filled := int(float64(width) * progress / 100)
	empty := width - filled

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}

// goalLine renders "label  current / goal" with a progress bar underneath.
func goalLine(label string, current, goal float64, unit string, width int) string {
	pct := 0.0
	if goal > 0 {
		pct = current / goal * 100
	}
	barWidth := width - 4
	if barWidth < 10 {
		barWidth = 10
	}
	head := fmt.Sprintf("%s  %s",
		textStyle.Render(label),
		dimStyle.Render(fmt.Sprintf("%s / %s%s", trimFloat(current), trimFloat(goal), unit)))
	return head + "\n" + renderProgressBar(pct, barWidth)
}

// barChartRow renders one labeled bar scaled against max.
func barChartRow(label string, value, max float64, width int, color lipgloss.Color) string {
	barWidth := width - 16
	if barWidth < 8 {
		barWidth = 8
	}
	filled := 0
	if max > 0 {
		filled = int(float64(barWidth) * value / max)
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s %s",
		dimStyle.Render(padRight(label, 8)),
		bar,
		textStyle.Render(trimFloat(value)))
}

// wrapText wraps text into lines no wider than width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) > width {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine += " " + word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimFloat formats a float without trailing zeros (165, 3.6).
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
