package store

import (
	"sync"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

// Domain stores cache the latest server-fetched collections. Contents are
// written wholesale on fetch and edited locally on create/delete so list
// pages avoid a round trip; the server remains the source of truth on the
// next fetch. No merge or conflict logic exists anywhere here.

// Workouts caches the workout plan list.
type Workouts struct {
	mu   sync.RWMutex
	list []models.Workout
}

// Set replaces the cached list with a fresh fetch result.
func (w *Workouts) Set(workouts []models.Workout) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = workouts
}

// Append adds a freshly created workout without re-fetching.
func (w *Workouts) Append(workout models.Workout) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, workout)
}

// All returns a copy of the cached list.
func (w *Workouts) All() []models.Workout {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Workout, len(w.list))
	copy(out, w.list)
	return out
}

// Nutrition caches today's meals and the daily macro totals.
type Nutrition struct {
	mu      sync.RWMutex
	summary models.NutritionSummary
}

// Set replaces the cached summary with a fresh fetch result.
func (n *Nutrition) Set(summary models.NutritionSummary) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summary = summary
}

// AppendMeal adds a created meal to the cached list.
func (n *Nutrition) AppendMeal(meal models.Meal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summary.Meals = append(n.summary.Meals, meal)
}

// RemoveMeal filters out the meal with the given id, leaving the rest
// untouched. The id is the sole filter key.
func (n *Nutrition) RemoveMeal(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	kept := n.summary.Meals[:0]
	for _, m := range n.summary.Meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	n.summary.Meals = kept
}

// Summary returns a copy of the cached summary.
func (n *Nutrition) Summary() models.NutritionSummary {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := n.summary
	out.Meals = make([]models.Meal, len(n.summary.Meals))
	copy(out.Meals, n.summary.Meals)
	return out
}

// Progress caches the read-only analytics projection. It is never mutated
// locally, only replaced per page visit.
type Progress struct {
	mu        sync.RWMutex
	analytics models.ProgressAnalytics
	loaded    bool
}

// Set replaces the cached analytics bundle.
func (p *Progress) Set(analytics models.ProgressAnalytics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.analytics = analytics
	p.loaded = true
}

// Analytics returns the cached bundle and whether one has been loaded.
func (p *Progress) Analytics() (models.ProgressAnalytics, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.analytics, p.loaded
}
