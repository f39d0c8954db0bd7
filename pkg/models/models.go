package models

import "time"

// User is the identity returned by the backend on login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ChatMessage is a single entry in the coach conversation.
// Insertion order is display order; IDs are unique within a session.
// Optimistic entries carry a locally generated time-based ID until the
// server-issued ID arrives with the reply.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Workout is a workout plan entry.
type Workout struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"` // minutes
	Exercises string `json:"exercises"`
	Intensity string `json:"intensity"` // light, moderate, intense
	Calories  int    `json:"calories,omitempty"`
}

// Meal is a logged meal with its macros.
type Meal struct {
	ID       string  `json:"id"`
	FoodName string  `json:"food_name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DashboardStats is the read-only summary projection for the dashboard page.
type DashboardStats struct {
	WorkoutsThisWeek int       `json:"workouts_this_week"`
	CaloriesToday    float64   `json:"calories_today"`
	ProteinToday     float64   `json:"protein_today"`
	GoalProgress     float64   `json:"goal_progress"`
	StreakDays       int       `json:"streak_days"`
	RecentWorkouts   []Workout `json:"recent_workouts"`
}

// NutritionSummary is the meal list plus the daily macro totals.
type NutritionSummary struct {
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

// WeightPoint is one sample in the weight history series.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// FrequencyPoint is workouts per day of week.
type FrequencyPoint struct {
	Day      string `json:"day"`
	Workouts int    `json:"workouts"`
}

// CaloriePoint is calories burned on a given date.
type CaloriePoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// WorkoutTypeSlice is one slice of the workout category breakdown.
type WorkoutTypeSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Achievement is an unlocked milestone.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ProgressAnalytics is the analytics bundle for the progress page.
type ProgressAnalytics struct {
	TotalWorkouts       int                `json:"total_workouts"`
	TotalCaloriesBurned float64            `json:"total_calories_burned"`
	WeightChange        float64            `json:"weight_change"`
	WeightHistory       []WeightPoint      `json:"weight_history"`
	WorkoutFrequency    []FrequencyPoint   `json:"workout_frequency"`
	CaloriesHistory     []CaloriePoint     `json:"calories_history"`
	WorkoutTypes        []WorkoutTypeSlice `json:"workout_types"`
	Achievements        []Achievement      `json:"achievements"`
}
