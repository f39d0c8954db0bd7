package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// progressModel is the analytics page: key metrics, chart projections, and
// the achievements list. The bundle is read-only and re-fetched per visit.
type progressModel struct {
	app     *App
	ctx     context.Context
	spin    spinner.Model
	loading bool
	reqID   string

	viewport viewport.Model
	ready    bool
	width    int
}

func newProgressModel(app *App, ctx context.Context) (progressModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	m := progressModel{
		app:     app,
		ctx:     ctx,
		spin:    sp,
		loading: true,
		reqID:   uuid.New().String(),
	}
	return m, tea.Batch(loadAnalyticsCmd(ctx, app.Client, m.reqID), sp.Tick)
}

func (m progressModel) Update(msg tea.Msg) (progressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		vpHeight := msg.Height - 6
		if vpHeight < 5 {
			vpHeight = 5
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case AnalyticsLoadedMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.app.Logf("fetch analytics: %v", msg.Err)
			return m, nil
		}
		m.app.Progress.Set(msg.Analytics)
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) refreshViewport() {
	if !m.ready {
		return
	}
	if analytics, ok := m.app.Progress.Analytics(); ok {
		m.viewport.SetContent(renderAnalytics(analytics, m.viewport.Width))
	}
}

func (m progressModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Progress Analytics") + "\n")
	s.WriteString(dimStyle.Render("Track your fitness journey and achievements") + "\n\n")

	if m.loading {
		s.WriteString(m.spin.View() + textStyle.Render(" Loading analytics..."))
		return s.String()
	}

	analytics, ok := m.app.Progress.Analytics()
	if !ok {
		s.WriteString(dimStyle.Render("No analytics available yet."))
		return s.String()
	}

	if m.ready {
		s.WriteString(m.viewport.View())
	} else {
		s.WriteString(renderAnalytics(analytics, width))
	}
	return s.String()
}

// renderAnalytics draws the whole analytics bundle: metric cards, the four
// chart projections, and achievements.
func renderAnalytics(a models.ProgressAnalytics, width int) string {
	var s strings.Builder

	cardWidth := width/4 - 3
	if cardWidth < 16 {
		cardWidth = 16
	}
	s.WriteString(cardRow(
		statCard("Total Workouts", fmt.Sprintf("%d", a.TotalWorkouts), cardWidth),
		statCard("Calories Burned", trimFloat(a.TotalCaloriesBurned), cardWidth),
		statCard("Weight Change", fmt.Sprintf("%s kg", trimFloat(a.WeightChange)), cardWidth),
		statCard("Achievements", fmt.Sprintf("%d", len(a.Achievements)), cardWidth),
	))
	s.WriteString("\n\n")

	chartWidth := width - 4
	if chartWidth < 30 {
		chartWidth = 30
	}

	if len(a.WeightHistory) > 0 {
		s.WriteString(headerStyle.Render("Weight Progress") + "\n")
		max := 0.0
		for _, p := range a.WeightHistory {
			if p.Weight > max {
				max = p.Weight
			}
		}
		for _, p := range a.WeightHistory {
			s.WriteString(barChartRow(p.Date, p.Weight, max, chartWidth, lipgloss.Color("63")) + "\n")
		}
		s.WriteString("\n")
	}

	if len(a.WorkoutFrequency) > 0 {
		s.WriteString(headerStyle.Render("Workout Frequency") + "\n")
		max := 0.0
		for _, p := range a.WorkoutFrequency {
			if float64(p.Workouts) > max {
				max = float64(p.Workouts)
			}
		}
		for _, p := range a.WorkoutFrequency {
			s.WriteString(barChartRow(p.Day, float64(p.Workouts), max, chartWidth, lipgloss.Color("212")) + "\n")
		}
		s.WriteString("\n")
	}

	if len(a.CaloriesHistory) > 0 {
		s.WriteString(headerStyle.Render("Calories Burned") + "\n")
		max := 0.0
		for _, p := range a.CaloriesHistory {
			if p.Calories > max {
				max = p.Calories
			}
		}
		for _, p := range a.CaloriesHistory {
			s.WriteString(barChartRow(p.Date, p.Calories, max, chartWidth, lipgloss.Color("214")) + "\n")
		}
		s.WriteString("\n")
	}

	if len(a.WorkoutTypes) > 0 {
		s.WriteString(headerStyle.Render("Workout Types") + "\n")
		total := 0
		for _, t := range a.WorkoutTypes {
			total += t.Value
		}
		for _, t := range a.WorkoutTypes {
			pct := 0.0
			if total > 0 {
				pct = float64(t.Value) / float64(total) * 100
			}
			s.WriteString(fmt.Sprintf("%s %s %s\n",
				dimStyle.Render(padRight(t.Name, 12)),
				renderProgressBar(pct, 20),
				textStyle.Render(fmt.Sprintf("%d (%s%%)", t.Value, trimFloat(pct)))))
		}
		s.WriteString("\n")
	}

	if len(a.Achievements) > 0 {
		s.WriteString(headerStyle.Render("Achievements") + "\n")
		for _, ach := range a.Achievements {
			s.WriteString(selectedStyle.Render("★ "+ach.Title) + "\n")
			s.WriteString(textStyle.Render("  "+ach.Description) + "\n")
			s.WriteString(faintStyle.Render("  Unlocked "+ach.Date) + "\n")
		}
	}

	return s.String()
}
