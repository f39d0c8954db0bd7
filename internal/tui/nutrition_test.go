package tui

import (
	"context"
	"testing"

	"github.com/Ramavadhoota/fitflow/internal/api"
	"github.com/Ramavadhoota/fitflow/pkg/models"
)

func newTestNutrition(t *testing.T, meals []models.Meal) (nutritionModel, *App) {
	t.Helper()
	app := newTestApp(nil)
	signIn(app)

	nm, _ := newNutritionModel(app, context.Background())
	nm, _ = nm.Update(NutritionLoadedMsg{
		ReqID:   nm.reqID,
		Summary: models.NutritionSummary{Meals: meals},
	})
	return nm, app
}

// TestDeleteMealRemovesOnlyThatEntry covers the optimistic delete: the entry
// disappears at the keypress and no sibling is touched.
func TestDeleteMealRemovesOnlyThatEntry(t *testing.T) {
	nm, app := newTestNutrition(t, []models.Meal{
		{ID: "m1", FoodName: "Oatmeal", Calories: 300},
		{ID: "m2", FoodName: "Chicken salad", Calories: 450},
		{ID: "m3", FoodName: "Yogurt", Calories: 150},
	})
	nm.cursor = 1

	nm, cmd := nm.Update(keyRunes("x"))
	if cmd == nil {
		t.Fatal("delete must dispatch the request")
	}

	got := app.Nutrition.Summary().Meals
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m3" {
		t.Errorf("expected m1 and m3 to survive, got %+v", got)
	}
	if nm.cursor != 0 {
		t.Errorf("cursor must step back after a delete, got %d", nm.cursor)
	}
}

// TestDeleteFailureKeepsOptimisticRemoval pins down the no-rollback rule.
func TestDeleteFailureKeepsOptimisticRemoval(t *testing.T) {
	nm, app := newTestNutrition(t, []models.Meal{
		{ID: "m1", FoodName: "Oatmeal", Calories: 300},
	})

	nm, _ = nm.Update(keyRunes("x"))
	nm, _ = nm.Update(MealDeletedMsg{
		MealID: "m1",
		Err:    &api.Error{Kind: api.KindTransport, Op: "delete meal"},
	})

	if got := app.Nutrition.Summary().Meals; len(got) != 0 {
		t.Errorf("a failed delete must not restore the entry, got %+v", got)
	}
}

// TestLogMealAppendsAndResetsForm covers the form happy path: the confirmed
// meal lands in the store, the form closes clean, and totals are refetched.
func TestLogMealAppendsAndResetsForm(t *testing.T) {
	nm, app := newTestNutrition(t, []models.Meal{
		{ID: "m1", FoodName: "Oatmeal", Calories: 300},
	})

	nm, _ = nm.Update(keyRunes("a"))
	if !nm.showForm {
		t.Fatal("expected the log-meal form to open")
	}

	nm.inputs[mealFieldName].SetValue("Chicken breast")
	nm.inputs[mealFieldCalories].SetValue("165")
	nm.inputs[mealFieldProtein].SetValue("31")
	nm.inputs[mealFieldFat].SetValue("3.6")

	nm, cmd := nm.submitForm()
	if cmd == nil {
		t.Fatal("a valid form must dispatch the request")
	}
	if !nm.submitting {
		t.Error("submit must set the busy flag")
	}

	nm, cmd = nm.Update(MealLoggedMsg{
		ReqID: nm.formReqID,
		Meal:  models.Meal{ID: "m9", FoodName: "Chicken breast", Calories: 165, Protein: 31, Fat: 3.6},
	})

	got := app.Nutrition.Summary().Meals
	if len(got) != 2 || got[1].ID != "m9" {
		t.Errorf("expected the confirmed meal appended once, got %+v", got)
	}
	if nm.showForm {
		t.Error("the form must close after a confirmed log")
	}
	if v := nm.inputs[mealFieldQuantity].Value(); v != "1" {
		t.Errorf("quantity must reset to its default, got %q", v)
	}
	for _, field := range []int{mealFieldName, mealFieldCalories, mealFieldProtein, mealFieldCarbs, mealFieldFat} {
		if v := nm.inputs[field].Value(); v != "" {
			t.Errorf("field %d must reset, got %q", field, v)
		}
	}
	if cmd == nil {
		t.Error("a confirmed log must refetch the daily totals")
	}
}

// TestLogMealValidation rejects a missing name and non-numeric calories
// without dispatching anything.
func TestLogMealValidation(t *testing.T) {
	nm, _ := newTestNutrition(t, nil)
	nm, _ = nm.Update(keyRunes("a"))

	nm, cmd := nm.submitForm()
	if cmd != nil {
		t.Error("an empty name must not dispatch")
	}
	if nm.errText == "" {
		t.Error("expected a validation message for the missing name")
	}

	nm.inputs[mealFieldName].SetValue("Oatmeal")
	nm.inputs[mealFieldCalories].SetValue("lots")
	nm, cmd = nm.submitForm()
	if cmd != nil {
		t.Error("non-numeric calories must not dispatch")
	}
	if nm.errText == "" {
		t.Error("expected a validation message for the calories field")
	}
}

// TestStaleNutritionResponseIgnored checks the request-id guard on loads.
func TestStaleNutritionResponseIgnored(t *testing.T) {
	nm, app := newTestNutrition(t, []models.Meal{{ID: "m1", FoodName: "Oatmeal"}})

	nm, _ = nm.Update(NutritionLoadedMsg{
		ReqID:   "stale-request",
		Summary: models.NutritionSummary{Meals: []models.Meal{{ID: "m9", FoodName: "Stale"}}},
	})

	got := app.Nutrition.Summary().Meals
	if len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("stale response must be dropped, got %+v", got)
	}
}
