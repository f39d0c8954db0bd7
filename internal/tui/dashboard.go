package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// Daily goal targets mirrored from the dashboard's goal widgets.
const (
	calorieGoal = 2000
	proteinGoal = 150
)

// dashboardModel is the summary page: quick stats, recent workouts, and
// today's goal progress.
type dashboardModel struct {
	app     *App
	ctx     context.Context
	spin    spinner.Model
	loading bool
	reqID   string
	stats   models.DashboardStats
}

func newDashboardModel(app *App, ctx context.Context) (dashboardModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	m := dashboardModel{
		app:     app,
		ctx:     ctx,
		spin:    sp,
		loading: true,
		reqID:   uuid.New().String(),
	}
	return m, tea.Batch(loadDashboardCmd(ctx, app.Client, m.reqID), sp.Tick)
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DashboardLoadedMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			// List pages swallow fetch errors; the page just stays empty.
			m.app.Logf("fetch dashboard: %v", msg.Err)
			return m, nil
		}
		m.stats = msg.Stats
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) View(width, height int) string {
	var s strings.Builder

	name := ""
	if user, ok := m.app.Session.User(); ok {
		name = user.Name
	}
	s.WriteString(headerStyle.Render(fmt.Sprintf("Welcome, %s!", name)) + "\n")
	s.WriteString(dimStyle.Render(time.Now().Format("Monday, January 2, 2006")) + "\n\n")

	if m.loading {
		s.WriteString(m.spin.View() + textStyle.Render(" Loading dashboard..."))
		return s.String()
	}

	cardWidth := width/4 - 3
	if cardWidth < 16 {
		cardWidth = 16
	}
	s.WriteString(cardRow(
		statCard("Workouts This Week", fmt.Sprintf("%d", m.stats.WorkoutsThisWeek), cardWidth),
		statCard("Calories Today", fmt.Sprintf("%s kcal", trimFloat(m.stats.CaloriesToday)), cardWidth),
		statCard("Goal Progress", fmt.Sprintf("%s%%", trimFloat(m.stats.GoalProgress)), cardWidth),
		statCard("Streak Days", fmt.Sprintf("%d", m.stats.StreakDays), cardWidth),
	))
	s.WriteString("\n\n")

	left := m.renderRecentWorkouts(width * 2 / 3)
	right := m.renderGoals(width/3 - 2)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	return s.String()
}

func (m dashboardModel) renderRecentWorkouts(width int) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Recent Workouts") + "\n")
	s.WriteString(faintStyle.Render(strings.Repeat("─", width-2)) + "\n")

	if len(m.stats.RecentWorkouts) == 0 {
		s.WriteString(dimStyle.Render("No workouts yet. Start today!"))
		return lipgloss.NewStyle().Width(width).Render(s.String())
	}

	for _, w := range m.stats.RecentWorkouts {
		s.WriteString(textStyle.Render(w.Name) + "\n")
		detail := fmt.Sprintf("%d min", w.Duration)
		if w.Exercises != "" {
			detail += " • " + truncate(w.Exercises, width/2)
		}
		if w.Calories > 0 {
			detail += fmt.Sprintf(" • +%d kcal", w.Calories)
		}
		s.WriteString(dimStyle.Render(detail) + "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(s.String())
}

func (m dashboardModel) renderGoals(width int) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Today's Goals") + "\n")
	s.WriteString(faintStyle.Render(strings.Repeat("─", width-2)) + "\n")
	s.WriteString(goalLine("Calories", m.stats.CaloriesToday, calorieGoal, " kcal", width) + "\n")
	s.WriteString(goalLine("Protein", m.stats.ProteinToday, proteinGoal, "g", width) + "\n\n")
	s.WriteString(headerStyle.Render("Quick Actions") + "\n")
	s.WriteString(dimStyle.Render("2 start workout • 3 log meal • 4 chat with coach"))
	return lipgloss.NewStyle().Width(width).Render(s.String())
}
