package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homeModel is the unauthenticated landing page.
type homeModel struct {
	app *App
}

func newHomeModel(app *App) homeModel {
	return homeModel{app: app}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	return m, nil
}

func (m homeModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("FitFlow") + "\n")
	s.WriteString(textStyle.Render("Your Multi-Agent AI Fitness Coach") + "\n\n")
	s.WriteString(dimStyle.Render("Get personalized workout plans, nutrition tracking, and"+
		" AI-powered coaching all in one place.") + "\n\n")

	features := []struct {
		title string
		desc  string
	}{
		{"Smart Workouts", "AI-generated workout plans tailored to your fitness level"},
		{"Nutrition Tracking", "Track meals and get personalized nutrition recommendations"},
		{"Progress Analytics", "Real-time insights into your fitness journey"},
	}

	cardWidth := width/3 - 2
	if cardWidth < 20 {
		cardWidth = 20
	}
	var cards []string
	for _, f := range features {
		body := headerStyle.Render(f.title) + "\n" +
			strings.Join(wrapText(f.desc, cardWidth-2), "\n")
		cards = append(cards, cardBorderStyle.Width(cardWidth).Render(body))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("Press l to sign in or r to create an account."))

	return s.String()
}
