package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ramavadhoota/fitflow/internal/api"
	"github.com/Ramavadhoota/fitflow/internal/store"
	"github.com/Ramavadhoota/fitflow/pkg/models"
)

type fakeVault struct {
	token   string
	deletes int
}

func (f *fakeVault) SaveToken(token string) error { f.token = token; return nil }
func (f *fakeVault) LoadToken() (string, error)   { return f.token, nil }
func (f *fakeVault) DeleteToken() error           { f.token = ""; f.deletes++; return nil }

func newTestApp(vault store.TokenVault) *App {
	session := store.NewSession(vault)
	return &App{
		Session:   session,
		Workouts:  &store.Workouts{},
		Nutrition: &store.Nutrition{},
		Progress:  &store.Progress{},
		Client:    api.New("http://127.0.0.1:0", session),
	}
}

func signIn(app *App) {
	app.Session.SetToken("tok")
	app.Session.SetUser(models.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: "user"})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestUnauthenticatedMountRedirectsToLogin checks the auth guard: every
// protected page redirects to login without issuing a fetch.
func TestUnauthenticatedMountRedirectsToLogin(t *testing.T) {
	for _, target := range []route{routeDashboard, routeWorkouts, routeNutrition, routeCoach, routeProgress} {
		m := NewModel(newTestApp(nil))
		m, cmd := m.navigate(target, "")

		if m.route != routeLogin {
			t.Errorf("route %d: expected redirect to login, got %d", target, m.route)
		}
		if cmd != nil {
			t.Errorf("route %d: no fetch may be issued when unauthenticated", target)
		}
	}
}

// TestAuthenticatedMountIssuesFetch checks that a signed-in navigation mounts
// the page and kicks off its initial load.
func TestAuthenticatedMountIssuesFetch(t *testing.T) {
	app := newTestApp(nil)
	signIn(app)

	for _, target := range []route{routeDashboard, routeWorkouts, routeNutrition, routeCoach, routeProgress} {
		m := NewModel(app)
		m, cmd := m.navigate(target, "")

		if m.route != target {
			t.Errorf("expected route %d, got %d", target, m.route)
		}
		if cmd == nil {
			t.Errorf("route %d: mounting must issue the initial fetch", target)
		}
	}
}

// TestHomeRedirectsAuthenticatedToDashboard mirrors the landing page
// behavior: a signed-in user never sees the landing page.
func TestHomeRedirectsAuthenticatedToDashboard(t *testing.T) {
	app := newTestApp(nil)
	signIn(app)

	m := NewModel(app)
	m, _ = m.navigate(routeHome, "")
	if m.route != routeDashboard {
		t.Errorf("expected dashboard, got %d", m.route)
	}
}

// TestLogoutClearsSessionAndNavigatesHome covers the ctrl+l shortcut.
func TestLogoutClearsSessionAndNavigatesHome(t *testing.T) {
	vault := &fakeVault{token: "tok"}
	app := newTestApp(vault)
	signIn(app)

	m := NewModel(app)
	m, _ = m.navigate(routeDashboard, "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	if app.Session.IsAuthenticated() {
		t.Error("logout must clear the session")
	}
	if vault.deletes != 1 {
		t.Error("logout must remove the persisted token")
	}
	if m.route != routeHome {
		t.Errorf("expected home after logout, got %d", m.route)
	}
}

// TestStaleResponseIsDropped verifies the request-id guard: a result from a
// superseded request must not overwrite current state.
func TestStaleResponseIsDropped(t *testing.T) {
	app := newTestApp(nil)
	signIn(app)
	app.Workouts.Set([]models.Workout{{ID: "w1", Name: "Current"}})

	m := NewModel(app)
	m, _ = m.navigate(routeWorkouts, "")

	updated, _ := m.Update(WorkoutsLoadedMsg{
		ReqID:    "stale-request",
		Workouts: []models.Workout{{ID: "w9", Name: "Stale"}},
	})
	m = updated.(Model)

	got := app.Workouts.All()
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("stale response must be dropped, store has %+v", got)
	}
}

// TestNavExactlyOneActiveLink checks the active-route highlight rule.
func TestNavExactlyOneActiveLink(t *testing.T) {
	for _, r := range []route{routeDashboard, routeWorkouts, routeNutrition, routeCoach, routeProgress} {
		active := activeNavLabels(r)
		if len(active) != 1 {
			t.Errorf("route %d: expected exactly one active link, got %v", r, active)
		}
	}

	if active := activeNavLabels(routeLogin); len(active) != 0 {
		t.Errorf("login route must highlight no menu link, got %v", active)
	}
}

// TestLoginSuccessStoresSessionAndNavigates covers the happy login path.
func TestLoginSuccessStoresSessionAndNavigates(t *testing.T) {
	vault := &fakeVault{}
	app := newTestApp(vault)

	lm := newLoginModel(app, context.Background(), "")
	lm.email.SetValue("jane@example.com")
	lm.password.SetValue("secret")

	lm, cmd := lm.submit()
	if cmd == nil {
		t.Fatal("submit must dispatch the login request")
	}
	if !lm.submitting {
		t.Error("submit must set the busy flag")
	}

	lm, cmd = lm.Update(LoginResultMsg{
		ReqID: lm.reqID,
		Result: api.LoginResult{
			AccessToken: "tok-123",
			User:        models.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: "user"},
		},
	})

	if !app.Session.IsAuthenticated() {
		t.Error("successful login must authenticate the session")
	}
	if app.Session.Token() != "tok-123" {
		t.Errorf("expected stored token, got %q", app.Session.Token())
	}
	if vault.token != "tok-123" {
		t.Error("the token must be persisted durably")
	}

	if cmd == nil {
		t.Fatal("login must navigate afterwards")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.to != routeDashboard {
		t.Errorf("expected navigation to dashboard, got %+v", nav)
	}
}

// TestLoginFailureShowsServerDetail covers the inline error path; login is
// the one page that surfaces the server-provided detail.
func TestLoginFailureShowsServerDetail(t *testing.T) {
	app := newTestApp(nil)

	lm := newLoginModel(app, context.Background(), "")
	lm.email.SetValue("jane@example.com")
	lm.password.SetValue("wrong")

	lm, _ = lm.submit()
	lm, cmd := lm.Update(LoginResultMsg{
		ReqID: lm.reqID,
		Err:   &api.Error{Kind: api.KindServer, Op: "login", Status: 401, Detail: "Invalid credentials"},
	})

	if app.Session.IsAuthenticated() {
		t.Error("failed login must leave the session unauthenticated")
	}
	if lm.errText != "Invalid credentials" {
		t.Errorf("expected server detail inline, got %q", lm.errText)
	}
	if lm.submitting {
		t.Error("failure must re-enable the form")
	}
	if cmd != nil {
		t.Error("failed login must not navigate")
	}
}

// TestLoginFallbackErrorText covers transport failures, which carry no
// server detail.
func TestLoginFallbackErrorText(t *testing.T) {
	app := newTestApp(nil)

	lm := newLoginModel(app, context.Background(), "")
	lm.email.SetValue("jane@example.com")
	lm.password.SetValue("secret")

	lm, _ = lm.submit()
	lm, _ = lm.Update(LoginResultMsg{
		ReqID: lm.reqID,
		Err:   &api.Error{Kind: api.KindTransport, Op: "login"},
	})

	if lm.errText != "Login failed. Please try again." {
		t.Errorf("expected fallback text, got %q", lm.errText)
	}
}
