package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/internal/api"
)

// loginModel is the sign-in page. It is the one page that surfaces the
// server-provided error detail inline.
type loginModel struct {
	app        *App
	ctx        context.Context
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	reqID      string
	errText    string
	flash      string
}

func newLoginModel(app *App, ctx context.Context, flash string) loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		app:      app,
		ctx:      ctx,
		email:    email,
		password: password,
		flash:    flash,
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(routeHome)
		case "tab", "down":
			m = m.setFocus((m.focus + 1) % 2)
			return m, nil
		case "shift+tab", "up":
			m = m.setFocus((m.focus + 1) % 2)
			return m, nil
		case "enter":
			return m.submit()
		}

	case LoginResultMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			m.errText = api.Detail(msg.Err, "Login failed. Please try again.")
			return m, nil
		}
		// Persist first so a crash between here and SetToken cannot leave a
		// live session with no stored token.
		if err := m.app.Session.PersistToken(msg.Result.AccessToken); err != nil {
			m.app.Logf("persist token: %v", err)
		}
		m.app.Session.SetToken(msg.Result.AccessToken)
		m.app.Session.SetUser(msg.Result.User)
		return m, navigateTo(routeDashboard)
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) setFocus(focus int) loginModel {
	m.focus = focus
	if focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
	return m
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errText = "Email and password are required."
		return m, nil
	}

	m.errText = ""
	m.submitting = true
	m.reqID = uuid.New().String()
	return m, loginCmd(m.ctx, m.app.Client, m.reqID, email, password)
}

func (m loginModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Welcome Back") + "\n")
	s.WriteString(dimStyle.Render("Sign in to your FitFlow account") + "\n\n")

	if m.flash != "" {
		s.WriteString(noticeStyle.Render(m.flash) + "\n\n")
	}
	if m.errText != "" {
		s.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	s.WriteString(textStyle.Render("Email Address") + "\n")
	s.WriteString(m.email.View() + "\n\n")
	s.WriteString(textStyle.Render("Password") + "\n")
	s.WriteString(m.password.View() + "\n\n")

	if m.submitting {
		s.WriteString(dimStyle.Render("Signing in..."))
	} else {
		s.WriteString(dimStyle.Render("Don't have an account? Press esc, then r to register."))
	}

	return s.String()
}
