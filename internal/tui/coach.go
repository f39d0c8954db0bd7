package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// coachFallback is appended as a synthetic assistant message when a send
// fails; the coach page is the one place errors are surfaced in-conversation.
const coachFallback = "Sorry, I encountered an error. Please try again."

var suggestedTopics = []string{
	"What workout should I do today?",
	"How should I structure my nutrition?",
	"Tips for staying motivated?",
	"How to prevent workout injuries?",
}

// coachModel is the AI coach chat page.
type coachModel struct {
	app  *App
	ctx  context.Context
	spin spinner.Model

	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int

	messages    []models.ChatMessage
	busy        bool
	reqID       string
	sendReqID   string
	topicCursor int
}

func newCoachModel(app *App, ctx context.Context, width, height int) (coachModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	input := textinput.New()
	input.Placeholder = "Ask your coach..."
	input.CharLimit = 512
	input.Width = 60
	input.Focus()

	m := coachModel{
		app:   app,
		ctx:   ctx,
		spin:  sp,
		input: input,
		reqID: uuid.New().String(),
	}
	if width > 0 && height > 3 {
		m = m.resize(width, height-3)
	}
	return m, tea.Batch(loadChatHistoryCmd(ctx, app.Client, m.reqID), sp.Tick)
}

func (m coachModel) resize(width, height int) coachModel {
	m.width = width
	m.height = height
	vpHeight := height - 7
	if vpHeight < 5 {
		vpHeight = 5
	}
	if !m.ready {
		m.viewport = viewport.New(width-2, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 2
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
	return m
}

func (m coachModel) Update(msg tea.Msg) (coachModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height-3), nil

	case tea.KeyMsg:
		// The busy flag disables the input until the reply (or failure)
		// lands, so at most one send is in flight.
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			if m.input.Value() == "" && m.topicsVisible() {
				// A topic shortcut pre-fills the input and goes through the
				// same submit path as typed text.
				m.input.SetValue(suggestedTopics[m.topicCursor])
			}
			return m.send()
		case "up":
			if m.topicsVisible() {
				if m.topicCursor > 0 {
					m.topicCursor--
				}
				return m, nil
			}
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			if m.topicsVisible() {
				if m.topicCursor < len(suggestedTopics)-1 {
					m.topicCursor++
				}
				return m, nil
			}
			m.viewport.LineDown(1)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ChatHistoryLoadedMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		if msg.Err != nil {
			m.app.Logf("fetch chat history: %v", msg.Err)
			return m, nil
		}
		m.messages = msg.Messages
		m.refreshViewport()
		return m, nil

	case ChatReplyMsg:
		if msg.ReqID != m.sendReqID {
			return m, nil
		}
		m.busy = false
		if msg.Err != nil {
			m.app.Logf("send chat message: %v", msg.Err)
			m.messages = append(m.messages, models.ChatMessage{
				ID:        localMessageID(),
				Role:      "assistant",
				Content:   coachFallback,
				Timestamp: time.Now(),
			})
		} else {
			m.messages = append(m.messages, models.ChatMessage{
				ID:        msg.Reply.ID,
				Role:      "assistant",
				Content:   msg.Reply.Response,
				Timestamp: time.Now(),
			})
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.refreshViewport()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m coachModel) topicsVisible() bool {
	return len(m.messages) == 0
}

// send appends the user message locally before any round trip, then
// dispatches only the new text; the server keeps the conversation state.
func (m coachModel) send() (coachModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.messages = append(m.messages, models.ChatMessage{
		ID:        localMessageID(),
		Role:      "user",
		Content:   text,
		Timestamp: time.Now(),
	})
	m.input.Reset()
	m.busy = true
	m.sendReqID = uuid.New().String()
	m.refreshViewport()
	return m, tea.Batch(
		sendChatCmd(m.ctx, m.app.Client, m.sendReqID, text),
		m.spin.Tick,
	)
}

// localMessageID is the time-based id optimistic entries carry until a
// server-issued id exists.
func localMessageID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// refreshViewport re-renders the conversation and keeps the view pinned to
// the latest message.
func (m *coachModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m coachModel) renderMessages() string {
	if len(m.messages) == 0 {
		return dimStyle.Render("Welcome to AI Coach!\n" +
			"Ask me anything about workouts, nutrition, or fitness goals.")
	}

	bubbleWidth := m.viewport.Width * 2 / 3
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	var s strings.Builder
	for _, msg := range m.messages {
		body := strings.Join(wrapText(msg.Content, bubbleWidth-4), "\n")
		stamp := faintStyle.Render(msg.Timestamp.Format("15:04"))
		if msg.Role == "user" {
			bubble := userBubbleStyle.Render(body) + "\n" + stamp
			s.WriteString(lipgloss.NewStyle().
				Width(m.viewport.Width).
				Align(lipgloss.Right).
				Render(bubble))
		} else {
			s.WriteString(coachBubbleStyle.Render(body) + "\n" + stamp)
		}
		s.WriteString("\n")
	}

	if m.busy {
		s.WriteString(m.spin.View() + dimStyle.Render(" coach is typing..."))
	}
	return s.String()
}

func (m coachModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("AI Coach") + "\n")
	s.WriteString(dimStyle.Render("Chat with your personalized AI fitness coach") + "\n")

	if m.ready {
		s.WriteString(m.viewport.View() + "\n")
	}

	if m.topicsVisible() {
		s.WriteString(dimStyle.Render("Suggested topics (↑/↓ then enter):") + "\n")
		for i, topic := range suggestedTopics {
			if i == m.topicCursor {
				s.WriteString(selectedStyle.Render("> "+topic) + "\n")
			} else {
				s.WriteString(textStyle.Render("  "+topic) + "\n")
			}
		}
	}

	s.WriteString("\n")
	if m.busy {
		s.WriteString(fmt.Sprintf("%s %s", m.spin.View(), dimStyle.Render("waiting for coach...")))
	} else {
		s.WriteString(m.input.View())
	}
	return s.String()
}
