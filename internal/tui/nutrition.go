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

// Daily macro targets mirrored from the nutrition page's goal lines.
const (
	carbsGoal = 250
	fatGoal   = 65
)

// Meal form field order.
const (
	mealFieldName = iota
	mealFieldQuantity
	mealFieldCalories
	mealFieldProtein
	mealFieldCarbs
	mealFieldFat
	mealFieldCount
)

// nutritionModel is the meal-tracking page: daily totals, the meal list with
// optimistic removal, and the log-meal form.
type nutritionModel struct {
	app     *App
	ctx     context.Context
	spin    spinner.Model
	loading bool
	reqID   string

	cursor int

	showForm   bool
	formFocus  int
	inputs     []textinput.Model
	submitting bool
	formReqID  string
	errText    string
}

func newNutritionModel(app *App, ctx context.Context) (nutritionModel, tea.Cmd) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	m := nutritionModel{
		app:     app,
		ctx:     ctx,
		spin:    sp,
		loading: true,
		reqID:   uuid.New().String(),
	}
	m.resetForm()
	return m, tea.Batch(loadNutritionCmd(ctx, app.Client, m.reqID), sp.Tick)
}

func (m *nutritionModel) resetForm() {
	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.Width = width
		return ti
	}

	name := mk("e.g., Chicken breast", 32)
	name.Focus()
	quantity := mk("100g", 10)
	quantity.SetValue("1")

	m.inputs = []textinput.Model{
		name,
		quantity,
		mk("165", 10),
		mk("31", 10),
		mk("0", 10),
		mk("3.6", 10),
	}
	m.formFocus = mealFieldName
	m.errText = ""
}

func (m nutritionModel) Update(msg tea.Msg) (nutritionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)

	case NutritionLoadedMsg:
		if msg.ReqID != m.reqID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.app.Logf("fetch nutrition: %v", msg.Err)
			return m, nil
		}
		m.app.Nutrition.Set(msg.Summary)
		return m, nil

	case MealLoggedMsg:
		if msg.ReqID != m.formReqID {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			m.app.Logf("log meal: %v", msg.Err)
			m.errText = "Could not log the meal."
			return m, nil
		}
		m.app.Nutrition.AppendMeal(msg.Meal)
		m.showForm = false
		m.resetForm()
		// Refresh the daily totals; the server recomputes them.
		m.reqID = uuid.New().String()
		return m, loadNutritionCmd(m.ctx, m.app.Client, m.reqID)

	case MealDeletedMsg:
		if msg.Err != nil {
			// The optimistic removal stays; the next fetch reconciles.
			m.app.Logf("delete meal %s: %v", msg.MealID, msg.Err)
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

func (m nutritionModel) updateList(msg tea.KeyMsg) (nutritionModel, tea.Cmd) {
	meals := m.app.Nutrition.Summary().Meals
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(meals)-1 {
			m.cursor++
		}
	case "a":
		if !m.loading {
			m.showForm = true
		}
	case "x", "d":
		if m.loading || m.cursor >= len(meals) {
			return m, nil
		}
		meal := meals[m.cursor]
		// Remove locally first; the id is the sole filter key, so response
		// timing cannot touch any other entry.
		m.app.Nutrition.RemoveMeal(meal.ID)
		if m.cursor > 0 {
			m.cursor--
		}
		return m, deleteMealCmd(m.ctx, m.app.Client, uuid.New().String(), meal.ID)
	}
	return m, nil
}

func (m nutritionModel) updateForm(msg tea.KeyMsg) (nutritionModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.showForm = false
		m.resetForm()
		return m, nil
	case "tab", "down":
		return m.setFormFocus((m.formFocus + 1) % mealFieldCount), nil
	case "shift+tab", "up":
		return m.setFormFocus((m.formFocus + mealFieldCount - 1) % mealFieldCount), nil
	case "enter":
		return m.submitForm()
	}
	return m.updateFormInput(msg)
}

func (m nutritionModel) updateFormInput(msg tea.Msg) (nutritionModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.formFocus], cmd = m.inputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m nutritionModel) setFormFocus(focus int) nutritionModel {
	m.formFocus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m nutritionModel) submitForm() (nutritionModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[mealFieldName].Value())
	if name == "" {
		m.errText = "Food name is required."
		return m, nil
	}
	calories, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[mealFieldCalories].Value()), 64)
	if err != nil || calories < 0 {
		m.errText = "Calories must be a number."
		return m, nil
	}
	// Macro fields are optional and default to zero.
	protein := parseMacro(m.inputs[mealFieldProtein].Value())
	carbs := parseMacro(m.inputs[mealFieldCarbs].Value())
	fat := parseMacro(m.inputs[mealFieldFat].Value())

	m.errText = ""
	m.submitting = true
	m.formReqID = uuid.New().String()
	payload := api.NewMeal{
		FoodName: name,
		Quantity: strings.TrimSpace(m.inputs[mealFieldQuantity].Value()),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	return m, logMealCmd(m.ctx, m.app.Client, m.formReqID, payload)
}

func parseMacro(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func (m nutritionModel) View(width, height int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Nutrition Tracking") + "\n")
	s.WriteString(dimStyle.Render("Track your meals and nutritional intake") + "\n\n")

	if m.loading {
		s.WriteString(m.spin.View() + textStyle.Render(" Loading nutrition data..."))
		return s.String()
	}

	summary := m.app.Nutrition.Summary()

	cardWidth := width/4 - 3
	if cardWidth < 16 {
		cardWidth = 16
	}
	s.WriteString(cardRow(
		statCard("Calories", fmt.Sprintf("%s / %d kcal", trimFloat(summary.TotalCalories), calorieGoal), cardWidth),
		statCard("Protein", fmt.Sprintf("%sg / %dg", trimFloat(summary.TotalProtein), proteinGoal), cardWidth),
		statCard("Carbs", fmt.Sprintf("%sg / %dg", trimFloat(summary.TotalCarbs), carbsGoal), cardWidth),
		statCard("Fat", fmt.Sprintf("%sg / %dg", trimFloat(summary.TotalFat), fatGoal), cardWidth),
	))
	s.WriteString("\n\n")

	if m.showForm {
		s.WriteString(m.renderForm())
		return s.String()
	}

	s.WriteString(headerStyle.Render("Today's Meals") + "\n")
	if len(summary.Meals) == 0 {
		s.WriteString(dimStyle.Render("No meals logged yet. Press a to start logging!"))
		return s.String()
	}

	for i, meal := range summary.Meals {
		cursor := "  "
		style := textStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		s.WriteString(style.Render(cursor+meal.FoodName) + "\n")
		s.WriteString(dimStyle.Render(fmt.Sprintf("  %s cal • %sg protein • %sg carbs • %sg fat",
			trimFloat(meal.Calories), trimFloat(meal.Protein),
			trimFloat(meal.Carbs), trimFloat(meal.Fat))) + "\n")
	}

	return s.String()
}

func (m nutritionModel) renderForm() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Log Meal") + "\n\n")

	if m.errText != "" {
		s.WriteString(errorStyle.Render(m.errText) + "\n\n")
	}

	labels := []string{"Food Name", "Quantity", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)"}
	for i, input := range m.inputs {
		s.WriteString(textStyle.Render(labels[i]) + "\n")
		s.WriteString(input.View() + "\n\n")
	}

	if m.submitting {
		s.WriteString(dimStyle.Render("Logging meal..."))
	}
	return s.String()
}
