package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/internal/api"
)

// registerModel is the account-creation page. On success it hands off to the
// login page with a notice; registering does not sign the user in.
type registerModel struct {
	app        *App
	ctx        context.Context
	inputs     []textinput.Model
	focus      int
	submitting bool
	reqID      string
	errText    string
}

func newRegisterModel(app *App, ctx context.Context) registerModel {
	name := textinput.New()
	name.Placeholder = "Jane Doe"
	name.CharLimit = 128
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return registerModel{
		app:    app,
		ctx:    ctx,
		inputs: []textinput.Model{name, email, password},
	}
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(routeHome)
		case "tab", "down":
			m = m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m = m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			return m.submit()
		}

	case RegisterResultMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			m.errText = api.Detail(msg.Err, "Registration failed. Please try again.")
			return m, nil
		}
		return m, navigateWithFlash(routeLogin, "Account created. Sign in to get started.")
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) setFocus(focus int) registerModel {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	password := m.inputs[2].Value()
	if name == "" || email == "" || password == "" {
		m.errText = "All fields are required."
		return m, nil
	}

	m.errText = ""
	m.submitting = true
	m.reqID = uuid.New().String()
	return m, registerCmd(m.ctx, m.app.Client, m.reqID, name, email, password)
}

func (m registerModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Create Account") + "\n")
	s.WriteString(dimStyle.Render("Join FitFlow and start your fitness journey") + "\n\n")

	if m.errText != "" {
		s.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	labels := []string{"Name", "Email Address", "Password"}
	for i, input := range m.inputs {
		s.WriteString(textStyle.Render(labels[i]) + "\n")
		s.WriteString(input.View() + "\n\n")
	}

	if m.submitting {
		s.WriteString(dimStyle.Render("Creating account..."))
	} else {
		s.WriteString(dimStyle.Render("Already have an account? Press esc, then l to sign in."))
	}

	return s.String()
}
