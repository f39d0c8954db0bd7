package store

import (
	"testing"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

type fakeVault struct {
	token   string
	deletes int
}

func (f *fakeVault) SaveToken(token string) error { f.token = token; return nil }
func (f *fakeVault) LoadToken() (string, error)   { return f.token, nil }
func (f *fakeVault) DeleteToken() error           { f.token = ""; f.deletes++; return nil }

func TestSessionAuthenticatedOnlyWithUser(t *testing.T) {
	s := NewSession(nil)

	if s.IsAuthenticated() {
		t.Error("fresh session must be unauthenticated")
	}

	// A token alone does not authenticate.
	s.SetToken("tok")
	if s.IsAuthenticated() {
		t.Error("token without user must not authenticate")
	}

	s.SetUser(models.User{ID: "u1", Name: "Jane"})
	if !s.IsAuthenticated() {
		t.Error("session with user must be authenticated")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	vault := &fakeVault{token: "tok"}
	s := NewSession(vault)
	s.SetToken("tok")
	s.SetUser(models.User{ID: "u1"})

	s.Logout()

	if s.IsAuthenticated() {
		t.Error("logout must clear authentication")
	}
	if s.Token() != "" {
		t.Error("logout must clear the token")
	}
	if _, ok := s.User(); ok {
		t.Error("logout must clear the user")
	}
	if vault.deletes != 1 {
		t.Errorf("logout must remove the persisted token, got %d deletes", vault.deletes)
	}
}

func TestPersistAndRestoreToken(t *testing.T) {
	vault := &fakeVault{}
	s := NewSession(vault)

	if err := s.PersistToken("tok-123"); err != nil {
		t.Fatalf("persist token: %v", err)
	}
	stored, err := s.StoredToken()
	if err != nil {
		t.Fatalf("stored token: %v", err)
	}
	if stored != "tok-123" {
		t.Errorf("expected tok-123, got %q", stored)
	}
}

func TestRemoveMealFiltersByIDOnly(t *testing.T) {
	n := &Nutrition{}
	n.Set(models.NutritionSummary{
		Meals: []models.Meal{
			{ID: "m1", FoodName: "Chicken"},
			{ID: "m2", FoodName: "Rice"},
			{ID: "m3", FoodName: "Yogurt"},
		},
	})

	n.RemoveMeal("m1")

	meals := n.Summary().Meals
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].ID != "m2" || meals[1].ID != "m3" {
		t.Errorf("wrong meals left: %+v", meals)
	}

	// Removing a missing id leaves the list untouched.
	n.RemoveMeal("m1")
	if len(n.Summary().Meals) != 2 {
		t.Error("removing a missing id must be a no-op")
	}
}

func TestAppendMealKeepsExisting(t *testing.T) {
	n := &Nutrition{}
	n.Set(models.NutritionSummary{Meals: []models.Meal{{ID: "m1"}}})

	n.AppendMeal(models.Meal{ID: "m2", FoodName: "Oats"})

	meals := n.Summary().Meals
	if len(meals) != 2 || meals[1].ID != "m2" {
		t.Errorf("unexpected meals after append: %+v", meals)
	}
}

func TestWorkoutsSetReplacesWholesale(t *testing.T) {
	w := &Workouts{}
	w.Set([]models.Workout{{ID: "w1"}, {ID: "w2"}})
	w.Set([]models.Workout{{ID: "w3"}})

	got := w.All()
	if len(got) != 1 || got[0].ID != "w3" {
		t.Errorf("set must replace wholesale, got %+v", got)
	}

	w.Append(models.Workout{ID: "w4"})
	if len(w.All()) != 2 {
		t.Error("append must add to the cached list")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	w := &Workouts{}
	w.Set([]models.Workout{{ID: "w1", Name: "Cardio"}})

	got := w.All()
	got[0].Name = "mutated"

	if w.All()[0].Name != "Cardio" {
		t.Error("All must return a copy, not the backing slice")
	}
}
