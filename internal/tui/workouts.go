package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Ramavadhoota/fitflow/internal/api"
)

var intensities = []string{"light", "moderate", "intense"}

// Form field order: name, duration, intensity selector, exercises.
const (
	workoutFieldName = iota
	workoutFieldDuration
	workoutFieldIntensity
	workoutFieldExercises
	workoutFieldCount
)

// workoutsModel is the workout plans page: the cached list, a creation form,
// and the start-workout action.
type workoutsModel struct {
	app     *App
	ctx     context.Context
	spin    spinner.Model
	loading bool
	reqID   string

	cursor int
	status string

	showForm   bool
	formFocus  int
	name       textinput.Model
	duration   textinput.Model
	exercises  textinput.Model
	intensity  int
	submitting bool
	formReqID  string
	errText    string
}

func newWorkoutsModel(app *App, ctx context.Context) (workoutsModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	m := workoutsModel{
		app:     app,
		ctx:     ctx,
		spin:    sp,
		loading: true,
		reqID:   uuid.New().String(),
	}
	m.resetForm()
	return m, tea.Batch(loadWorkoutsCmd(ctx, app.Client, m.reqID), sp.Tick)
}

func (m *workoutsModel) resetForm() {
	name := textinput.New()
	name.Placeholder = "e.g., Morning Cardio"
	name.CharLimit = 64
	name.Width = 32

	duration := textinput.New()
	duration.Placeholder = "30"
	duration.CharLimit = 4
	duration.Width = 8

	exercises := textinput.New()
	exercises.Placeholder = "Push-ups, Squats, Pull-ups"
	exercises.CharLimit = 256
	exercises.Width = 48

	m.name = name
	m.duration = duration
	m.exercises = exercises
	m.intensity = 1 // moderate, the form default
	m.formFocus = workoutFieldName
	m.name.Focus()
	m.errText = ""
}

func (m workoutsModel) Update(msg tea.Msg) (workoutsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case WorkoutsLoadedMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.app.Logf("fetch workouts: %v", msg.Err)
			return m, nil
		}
		m.app.Workouts.Set(msg.Workouts)
		return m, nil

	case WorkoutCreatedMsg:
		if msg.ReqID != m.formReqID {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			// The form stays open so nothing typed is lost.
			m.app.Logf("create workout: %v", msg.Err)
			m.errText = "Could not create the workout."
			return m, nil
		}
		m.app.Workouts.Append(msg.Workout)
		m.showForm = false
		m.resetForm()
		return m, nil

	case WorkoutStartedMsg:
		if msg.Err != nil {
			m.app.Logf("start workout %s: %v", msg.WorkoutID, msg.Err)
			return m, nil
		}
		for _, w := range m.app.Workouts.All() {
			if w.ID == msg.WorkoutID {
				m.status = fmt.Sprintf("Started %s. Go crush it!", w.Name)
				break
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.showForm {
		return m.updateFormInput(msg)
	}
	return m, nil
}

func (m workoutsModel) updateList(msg tea.KeyMsg) (workoutsModel, tea.Cmd) {
	workouts := m.app.Workouts.All()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(workouts)-1 {
			m.cursor++
		}
	case "a":
		// Mutations only become reachable once loading has cleared.
		if !m.loading {
			m.showForm = true
			m.status = ""
		}
	case "enter":
		if m.loading || m.cursor >= len(workouts) {
			return m, nil
		}
		w := workouts[m.cursor]
		return m, startWorkoutCmd(m.ctx, m.app.Client, uuid.New().String(), w.ID)
	}
	return m, nil
}

func (m workoutsModel) updateForm(msg tea.KeyMsg) (workoutsModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.showForm = false
		m.resetForm()
		return m, nil
	case "tab", "down":
		return m.setFormFocus((m.formFocus + 1) % workoutFieldCount), nil
	case "shift+tab", "up":
		return m.setFormFocus((m.formFocus + workoutFieldCount - 1) % workoutFieldCount), nil
	case "left", "right":
		if m.formFocus == workoutFieldIntensity {
			if msg.String() == "right" {
				m.intensity = (m.intensity + 1) % len(intensities)
			} else {
				m.intensity = (m.intensity + len(intensities) - 1) % len(intensities)
			}
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}
	return m.updateFormInput(msg)
}

func (m workoutsModel) updateFormInput(msg tea.Msg) (workoutsModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.formFocus {
	case workoutFieldName:
		m.name, cmd = m.name.Update(msg)
	case workoutFieldDuration:
		m.duration, cmd = m.duration.Update(msg)
	case workoutFieldExercises:
		m.exercises, cmd = m.exercises.Update(msg)
	}
	return m, cmd
}

func (m workoutsModel) setFormFocus(focus int) workoutsModel {
	m.formFocus = focus
	m.name.Blur()
	m.duration.Blur()
	m.exercises.Blur()
	switch focus {
	case workoutFieldName:
		m.name.Focus()
	case workoutFieldDuration:
		m.duration.Focus()
	case workoutFieldExercises:
		m.exercises.Focus()
	}
	return m
}

func (m workoutsModel) submitForm() (workoutsModel, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.errText = "Workout name is required."
		return m, nil
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.duration.Value()))
	if err != nil || duration <= 0 {
		m.errText = "Duration must be a positive number of minutes."
		return m, nil
	}

	m.errText = ""
	m.submitting = true
	m.formReqID = uuid.New().String()
	payload := api.NewWorkout{
		Name:      name,
		Duration:  duration,
		Exercises: strings.TrimSpace(m.exercises.Value()),
		Intensity: intensities[m.intensity],
	}
	return m, createWorkoutCmd(m.ctx, m.app.Client, m.formReqID, payload)
}

func (m workoutsModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Workout Plans") + "\n")
	s.WriteString(dimStyle.Render("Your personalized AI-generated workout plans") + "\n\n")

	if m.loading {
		s.WriteString(m.spin.View() + textStyle.Render(" Loading workouts..."))
		return s.String()
	}

	if m.showForm {
		s.WriteString(m.renderForm())
		return s.String()
	}

	if m.status != "" {
		s.WriteString(noticeStyle.Render(m.status) + "\n\n")
	}

	workouts := m.app.Workouts.All()
	if len(workouts) == 0 {
		s.WriteString(dimStyle.Render("No workouts yet. Press a to create your first one!"))
		return s.String()
	}

	for i, w := range workouts {
		cursor := "  "
		style := textStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		s.WriteString(style.Render(cursor+w.Name) + "\n")
		exercises := w.Exercises
		if exercises == "" {
			exercises = "Multiple"
		}
		s.WriteString(dimStyle.Render(fmt.Sprintf("  %d min • %s • intensity: %s",
			w.Duration, truncate(exercises, 48), w.Intensity)) + "\n")
	}

	return s.String()
}

func (m workoutsModel) renderForm() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Create New Workout") + "\n\n")

	if m.errText != "" {
		s.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	s.WriteString(textStyle.Render("Workout Name") + "\n")
	s.WriteString(m.name.View() + "\n\n")

	s.WriteString(textStyle.Render("Duration (minutes)") + "\n")
	s.WriteString(m.duration.View() + "\n\n")

	s.WriteString(textStyle.Render("Intensity") + "\n")
	var opts []string
	for i, intensity := range intensities {
		if i == m.intensity {
			if m.formFocus == workoutFieldIntensity {
				opts = append(opts, selectedStyle.Render("["+intensity+"]"))
			} else {
				opts = append(opts, textStyle.Render("["+intensity+"]"))
			}
		} else {
			opts = append(opts, dimStyle.Render(" "+intensity+" "))
		}
	}
	s.WriteString(strings.Join(opts, " ") + "\n\n")

	s.WriteString(textStyle.Render("Exercises (comma-separated)") + "\n")
	s.WriteString(m.exercises.View() + "\n\n")

	if m.submitting {
		s.WriteString(dimStyle.Render("Creating workout..."))
	}
	return s.String()
}
