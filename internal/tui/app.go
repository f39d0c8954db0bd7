// Package tui is the page layer of the FitFlow client: one bubbletea program
// whose views are the app's pages. Each page guards on authentication,
// fetches its domain data through the API gateway client, writes results into
// the domain stores, and renders from them.
package tui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ramavadhoota/fitflow/internal/api"
	"github.com/Ramavadhoota/fitflow/internal/store"
)

type route int

const (
	routeHome route = iota
	routeLogin
	routeRegister
	routeDashboard
	routeWorkouts
	routeNutrition
	routeCoach
	routeProgress
)

// App bundles the handles every page needs: the session, the domain stores,
// the gateway client, and a logger. Pages receive it explicitly, there are
// no package globals.
type App struct {
	Session   *store.Session
	Workouts  *store.Workouts
	Nutrition *store.Nutrition
	Progress  *store.Progress
	Client    *api.Client
	Logger    *log.Logger
}

// Logf logs a line when a logger is configured. Fetch failures on list pages
// are logged, not shown.
func (a *App) Logf(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}

// Model is the root bubbletea model: current route, window size, the active
// page sub-models, and the lifecycle context for in-flight page requests.
type Model struct {
	app    *App
	route  route
	width  int
	height int

	// pageCancel aborts the previous page's in-flight requests on
	// navigation, so late responses cannot land in a page no longer shown.
	pageCtx    context.Context
	pageCancel context.CancelFunc

	home      homeModel
	login     loginModel
	register  registerModel
	dashboard dashboardModel
	workouts  workoutsModel
	nutrition nutritionModel
	coach     coachModel
	progress  progressModel
}

// NewModel creates the root model. The initial page is chosen in Init so the
// auth guard runs through the same navigation path as every later switch.
func NewModel(app *App) Model {
	return Model{
		app:   app,
		route: routeHome,
		home:  newHomeModel(app),
	}
}

func (m Model) Init() tea.Cmd {
	initial := routeHome
	if m.app.Session.IsAuthenticated() {
		initial = routeDashboard
	}
	return tea.Batch(tea.EnterAltScreen, navigateTo(initial))
}

// navigate switches pages: cancels the outgoing page's requests, applies the
// auth guard, and mounts the destination page (issuing its initial fetch).
func (m Model) navigate(to route, flash string) (Model, tea.Cmd) {
	if m.requiresAuth(to) && !m.app.Session.IsAuthenticated() {
		to = routeLogin
	}
	// The landing page redirects signed-in users straight to the dashboard.
	if to == routeHome && m.app.Session.IsAuthenticated() {
		to = routeDashboard
	}

	if m.pageCancel != nil {
		m.pageCancel()
	}
	m.pageCtx, m.pageCancel = context.WithCancel(context.Background())

	m.route = to
	var cmd tea.Cmd
	switch to {
	case routeHome:
		m.home = newHomeModel(m.app)
	case routeLogin:
		m.login = newLoginModel(m.app, m.pageCtx, flash)
	case routeRegister:
		m.register = newRegisterModel(m.app, m.pageCtx)
	case routeDashboard:
		m.dashboard, cmd = newDashboardModel(m.app, m.pageCtx)
	case routeWorkouts:
		m.workouts, cmd = newWorkoutsModel(m.app, m.pageCtx)
	case routeNutrition:
		m.nutrition, cmd = newNutritionModel(m.app, m.pageCtx)
	case routeCoach:
		m.coach, cmd = newCoachModel(m.app, m.pageCtx, m.width, m.height)
	case routeProgress:
		m.progress, cmd = newProgressModel(m.app, m.pageCtx)
	}
	return m, cmd
}

func (m Model) requiresAuth(r route) bool {
	switch r {
	case routeDashboard, routeWorkouts, routeNutrition, routeCoach, routeProgress:
		return true
	}
	return false
}

// capturesInput reports whether the active page owns plain keystrokes, in
// which case global single-letter shortcuts stay out of the way.
func (m Model) capturesInput() bool {
	switch m.route {
	case routeLogin, routeRegister, routeCoach:
		return true
	case routeWorkouts:
		return m.workouts.showForm
	case routeNutrition:
		return m.nutrition.showForm
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case navigateMsg:
		return m.navigate(msg.to, msg.flash)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.pageCancel != nil {
				m.pageCancel()
			}
			return m, tea.Quit
		case "ctrl+l":
			if m.app.Session.IsAuthenticated() {
				m.app.Session.Logout()
				return m.navigate(routeHome, "")
			}
		}

		if !m.capturesInput() {
			switch msg.String() {
			case "q":
				if m.pageCancel != nil {
					m.pageCancel()
				}
				return m, tea.Quit
			case "1":
				return m.navigate(routeDashboard, "")
			case "2":
				return m.navigate(routeWorkouts, "")
			case "3":
				return m.navigate(routeNutrition, "")
			case "4":
				return m.navigate(routeCoach, "")
			case "5":
				return m.navigate(routeProgress, "")
			case "l":
				if !m.app.Session.IsAuthenticated() {
					return m.navigate(routeLogin, "")
				}
			case "r":
				if !m.app.Session.IsAuthenticated() {
					return m.navigate(routeRegister, "")
				}
			}
		}
	}

	// Everything else belongs to the active page.
	var cmd tea.Cmd
	switch m.route {
	case routeHome:
		m.home, cmd = m.home.Update(msg)
	case routeLogin:
		m.login, cmd = m.login.Update(msg)
	case routeRegister:
		m.register, cmd = m.register.Update(msg)
	case routeDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case routeWorkouts:
		m.workouts, cmd = m.workouts.Update(msg)
	case routeNutrition:
		m.nutrition, cmd = m.nutrition.Update(msg)
	case routeCoach:
		m.coach, cmd = m.coach.Update(msg)
	case routeProgress:
		m.progress, cmd = m.progress.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	height := m.height
	if height == 0 {
		height = 24
	}
	contentHeight := height - 3

	var content string
	switch m.route {
	case routeHome:
		content = m.home.View(width, contentHeight)
	case routeLogin:
		content = m.login.View(width, contentHeight)
	case routeRegister:
		content = m.register.View(width, contentHeight)
	case routeDashboard:
		content = m.dashboard.View(width, contentHeight)
	case routeWorkouts:
		content = m.workouts.View(width, contentHeight)
	case routeNutrition:
		content = m.nutrition.View(width, contentHeight)
	case routeCoach:
		content = m.coach.View(width, contentHeight)
	case routeProgress:
		content = m.progress.View(width, contentHeight)
	}

	return renderNav(m.app.Session, m.route, width) + "\n" +
		content + "\n" +
		m.renderFooter()
}

func (m Model) renderFooter() string {
	var hints string
	switch m.route {
	case routeHome:
		hints = "l: sign in • r: register • q: quit"
	case routeLogin, routeRegister:
		hints = "tab: next field • enter: submit • esc: back"
	case routeDashboard:
		hints = "1-5: pages • ctrl+l: logout • q: quit"
	case routeWorkouts:
		if m.workouts.showForm {
			hints = "tab: next field • enter: submit • esc: cancel"
		} else {
			hints = "↑/↓: select • enter: start • a: new workout • 1-5: pages • q: quit"
		}
	case routeNutrition:
		if m.nutrition.showForm {
			hints = "tab: next field • enter: submit • esc: cancel"
		} else {
			hints = "↑/↓: select • x: remove meal • a: log meal • 1-5: pages • q: quit"
		}
	case routeCoach:
		hints = "enter: send • ↑/↓: scroll • ctrl+l: logout"
	case routeProgress:
		hints = "↑/↓: scroll • 1-5: pages • q: quit"
	}
	return dimStyle.Render(hints)
}

// Run starts the TUI.
func Run(app *App) error {
	p := tea.NewProgram(NewModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
