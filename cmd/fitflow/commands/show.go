package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramavadhoota/fitflow/internal/tui"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "show <dashboard|workouts|nutrition|progress|chat>",
		Short:     "Print a page's data without the TUI",
		Long:      `Show fetches one page's data and prints it in a non-interactive format. Requires a signed-in session (run the TUI once to sign in).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dashboard", "workouts", "nutrition", "progress", "chat"},
		RunE:      runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	app, cleanup, err := buildApp()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	restoreSession(ctx, app)
	if !app.Session.IsAuthenticated() {
		return fmt.Errorf("not signed in: run fitflow and sign in first")
	}

	switch args[0] {
	case "dashboard":
		return showDashboard(ctx, app)
	case "workouts":
		return showWorkouts(ctx, app)
	case "nutrition":
		return showNutrition(ctx, app)
	case "progress":
		return showProgress(ctx, app)
	case "chat":
		return showChat(ctx, app)
	default:
		return fmt.Errorf("unknown page %q", args[0])
	}
}

func showDashboard(ctx context.Context, app *tui.App) error {
	stats, err := app.Client.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("fetch dashboard: %w", err)
	}

	fmt.Println("Dashboard")
	fmt.Println("=========")
	fmt.Printf("Workouts this week: %d\n", stats.WorkoutsThisWeek)
	fmt.Printf("Calories today:     %.0f kcal\n", stats.CaloriesToday)
	fmt.Printf("Protein today:      %.0f g\n", stats.ProteinToday)
	fmt.Printf("Goal progress:      %.0f%%\n", stats.GoalProgress)
	fmt.Printf("Streak:             %d days\n", stats.StreakDays)

	if len(stats.RecentWorkouts) > 0 {
		fmt.Println("\nRecent workouts:")
		for _, w := range stats.RecentWorkouts {
			fmt.Printf("  - %s (%d min, %s)\n", w.Name, w.Duration, w.Intensity)
		}
	}
	return nil
}

func showWorkouts(ctx context.Context, app *tui.App) error {
	workouts, err := app.Client.Workouts(ctx)
	if err != nil {
		return fmt.Errorf("fetch workouts: %w", err)
	}

	if len(workouts) == 0 {
		fmt.Println("No workouts found")
		return nil
	}

	fmt.Println("Workouts:")
	fmt.Println("=========")
	for i, w := range workouts {
		fmt.Printf("%d. %s\n", i+1, w.Name)
		fmt.Printf("   Duration: %d min\n", w.Duration)
		fmt.Printf("   Intensity: %s\n", w.Intensity)
		if w.Exercises != "" {
			fmt.Printf("   Exercises: %s\n", w.Exercises)
		}
		fmt.Println()
	}
	return nil
}

func showNutrition(ctx context.Context, app *tui.App) error {
	summary, err := app.Client.Nutrition(ctx)
	if err != nil {
		return fmt.Errorf("fetch nutrition: %w", err)
	}

	fmt.Println("Nutrition")
	fmt.Println("=========")
	fmt.Printf("Calories: %.0f kcal  Protein: %.1fg  Carbs: %.1fg  Fat: %.1fg\n",
		summary.TotalCalories, summary.TotalProtein, summary.TotalCarbs, summary.TotalFat)

	if len(summary.Meals) == 0 {
		fmt.Println("\nNo meals logged today")
		return nil
	}
	fmt.Println("\nMeals:")
	for _, m := range summary.Meals {
		fmt.Printf("  - %s: %.0f cal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
			m.FoodName, m.Calories, m.Protein, m.Carbs, m.Fat)
	}
	return nil
}

func showProgress(ctx context.Context, app *tui.App) error {
	analytics, err := app.Client.Analytics(ctx)
	if err != nil {
		return fmt.Errorf("fetch analytics: %w", err)
	}

	fmt.Println("Progress")
	fmt.Println("========")
	fmt.Printf("Total workouts:        %d\n", analytics.TotalWorkouts)
	fmt.Printf("Total calories burned: %.0f\n", analytics.TotalCaloriesBurned)
	fmt.Printf("Weight change:         %.1f kg\n", analytics.WeightChange)

	if len(analytics.Achievements) > 0 {
		fmt.Println("\nAchievements:")
		for _, a := range analytics.Achievements {
			fmt.Printf("  - %s: %s (unlocked %s)\n", a.Title, a.Description, a.Date)
		}
	}
	return nil
}

func showChat(ctx context.Context, app *tui.App) error {
	messages, err := app.Client.ChatHistory(ctx)
	if err != nil {
		return fmt.Errorf("fetch chat history: %w", err)
	}

	if len(messages) == 0 {
		fmt.Println("No chat history")
		return nil
	}

	fmt.Println("Chat history:")
	fmt.Println("=============")
	for _, m := range messages {
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Format("2006-01-02 15:04"), m.Role, m.Content)
	}
	return nil
}
