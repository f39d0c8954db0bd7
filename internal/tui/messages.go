package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ramavadhoota/fitflow/internal/api"
	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// Message types for async results. Every result carries the request id it was
// issued under; pages drop results whose id no longer matches their pending
// request, so a slow response cannot write into a page the user has left.
type (
	// LoginResultMsg is the outcome of a login attempt.
	LoginResultMsg struct {
		ReqID  string
		Result api.LoginResult
		Err    error
	}

	// RegisterResultMsg is the outcome of an account registration.
	RegisterResultMsg struct {
		ReqID string
		Err   error
	}

	// DashboardLoadedMsg carries the dashboard stats projection.
	DashboardLoadedMsg struct {
		ReqID string
		Stats models.DashboardStats
		Err   error
	}

	// WorkoutsLoadedMsg carries the workout list.
	WorkoutsLoadedMsg struct {
		ReqID    string
		Workouts []models.Workout
		Err      error
	}

	// WorkoutCreatedMsg carries a freshly created workout.
	WorkoutCreatedMsg struct {
		ReqID   string
		Workout models.Workout
		Err     error
	}

	// WorkoutStartedMsg is the outcome of starting a workout session.
	WorkoutStartedMsg struct {
		ReqID     string
		WorkoutID string
		Err       error
	}

	// NutritionLoadedMsg carries the meal list and daily totals.
	NutritionLoadedMsg struct {
		ReqID   string
		Summary models.NutritionSummary
		Err     error
	}

	// MealLoggedMsg carries a freshly created meal.
	MealLoggedMsg struct {
		ReqID string
		Meal  models.Meal
		Err   error
	}

	// MealDeletedMsg confirms a meal deletion. The local list was already
	// edited optimistically when the delete was dispatched.
	MealDeletedMsg struct {
		ReqID  string
		MealID string
		Err    error
	}

	// ChatHistoryLoadedMsg carries the prior coach conversation.
	ChatHistoryLoadedMsg struct {
		ReqID    string
		Messages []models.ChatMessage
		Err      error
	}

	// ChatReplyMsg carries the assistant reply to one sent message.
	ChatReplyMsg struct {
		ReqID string
		Reply api.ChatReply
		Err   error
	}

	// AnalyticsLoadedMsg carries the progress analytics bundle.
	AnalyticsLoadedMsg struct {
		ReqID     string
		Analytics models.ProgressAnalytics
		Err       error
	}

	// navigateMsg asks the root model to switch pages. flash is an optional
	// one-line notice shown on the destination page, e.g. the "account
	// created" notice on the login page after registering.
	navigateMsg struct {
		to    route
		flash string
	}
)

// navigateTo returns a command that switches the app to the given page.
func navigateTo(to route) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{to: to}
	}
}

// navigateWithFlash switches pages and carries a notice across.
func navigateWithFlash(to route, flash string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{to: to, flash: flash}
	}
}

// Commands wrapping gateway calls. Each runs in its own goroutine and
// delivers exactly one message back to the UI loop.

func loginCmd(ctx context.Context, client *api.Client, reqID, email, password string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Login(ctx, email, password)
		return LoginResultMsg{ReqID: reqID, Result: result, Err: err}
	}
}

func registerCmd(ctx context.Context, client *api.Client, reqID, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		err := client.Register(ctx, name, email, password)
		return RegisterResultMsg{ReqID: reqID, Err: err}
	}
}

func loadDashboardCmd(ctx context.Context, client *api.Client, reqID string) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.Dashboard(ctx)
		return DashboardLoadedMsg{ReqID: reqID, Stats: stats, Err: err}
	}
}

func loadWorkoutsCmd(ctx context.Context, client *api.Client, reqID string) tea.Cmd {
	return func() tea.Msg {
		workouts, err := client.Workouts(ctx)
		return WorkoutsLoadedMsg{ReqID: reqID, Workouts: workouts, Err: err}
	}
}

func createWorkoutCmd(ctx context.Context, client *api.Client, reqID string, w api.NewWorkout) tea.Cmd {
	return func() tea.Msg {
		created, err := client.CreateWorkout(ctx, w)
		return WorkoutCreatedMsg{ReqID: reqID, Workout: created, Err: err}
	}
}

func startWorkoutCmd(ctx context.Context, client *api.Client, reqID, workoutID string) tea.Cmd {
	return func() tea.Msg {
		err := client.StartWorkout(ctx, workoutID)
		return WorkoutStartedMsg{ReqID: reqID, WorkoutID: workoutID, Err: err}
	}
}

func loadNutritionCmd(ctx context.Context, client *api.Client, reqID string) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.Nutrition(ctx)
		return NutritionLoadedMsg{ReqID: reqID, Summary: summary, Err: err}
	}
}

func logMealCmd(ctx context.Context, client *api.Client, reqID string, m api.NewMeal) tea.Cmd {
	return func() tea.Msg {
		created, err := client.LogMeal(ctx, m)
		return MealLoggedMsg{ReqID: reqID, Meal: created, Err: err}
	}
}

func deleteMealCmd(ctx context.Context, client *api.Client, reqID, mealID string) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteMeal(ctx, mealID)
		return MealDeletedMsg{ReqID: reqID, MealID: mealID, Err: err}
	}
}

func loadChatHistoryCmd(ctx context.Context, client *api.Client, reqID string) tea.Cmd {
	return func() tea.Msg {
		messages, err := client.ChatHistory(ctx)
		return ChatHistoryLoadedMsg{ReqID: reqID, Messages: messages, Err: err}
	}
}

func sendChatCmd(ctx context.Context, client *api.Client, reqID, message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendChat(ctx, message)
		return ChatReplyMsg{ReqID: reqID, Reply: reply, Err: err}
	}
}

func loadAnalyticsCmd(ctx context.Context, client *api.Client, reqID string) tea.Cmd {
	return func() tea.Msg {
		analytics, err := client.Analytics(ctx)
		return AnalyticsLoadedMsg{ReqID: reqID, Analytics: analytics, Err: err}
	}
}
