package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ramavadhoota/fitflow/internal/store"
)

// navLink is one entry in the authenticated menu.
type navLink struct {
	route route
	label string
	key   string
}

var navLinks = []navLink{
	{routeDashboard, "Dashboard", "1"},
	{routeWorkouts, "Workouts", "2"},
	{routeNutrition, "Nutrition", "3"},
	{routeCoach, "Coach", "4"},
	{routeProgress, "Progress", "5"},
}

// renderNav draws the navigation shell: the five-item menu plus logout when
// authenticated, sign-in/register links otherwise. The link whose route
// equals the current route is the only one highlighted.
func renderNav(session *store.Session, current route, width int) string {
	brand := titleStyle.Render("FitFlow")

	var items []string
	if session.IsAuthenticated() {
		for _, link := range navLinks {
			label := fmt.Sprintf("%s %s", link.key, link.label)
			if link.route == current {
				items = append(items, activeNavStyle.Render(label))
			} else {
				items = append(items, navStyle.Render(label))
			}
		}

		right := ""
		if user, ok := session.User(); ok {
			right = dimStyle.Render(fmt.Sprintf("%s <%s>  ctrl+l logout", user.Name, user.Email))
		}
		left := lipgloss.JoinHorizontal(lipgloss.Top, brand, " ", strings.Join(items, " "))
		gap := width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		return left + strings.Repeat(" ", gap) + right
	}

	for _, link := range []struct {
		route route
		label string
	}{
		{routeLogin, "l Sign In"},
		{routeRegister, "r Register"},
	} {
		if link.route == current {
			items = append(items, activeNavStyle.Render(link.label))
		} else {
			items = append(items, navStyle.Render(link.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, " ", strings.Join(items, " "))
}

// activeNavLabels reports which menu labels are highlighted for a route.
// Highlighting is an exact route match, never a prefix match.
func activeNavLabels(current route) []string {
	var active []string
	for _, link := range navLinks {
		if link.route == current {
			active = append(active, link.label)
		}
	}
	return active
}
