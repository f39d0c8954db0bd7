package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Ramavadhoota/fitflow/pkg/models"
)

const basePath = "/api/v1"

// TokenSource supplies the current bearer token for outgoing requests. An
// empty string means no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// Client is the single gateway every page uses to reach the FitFlow backend.
// It attaches the bearer token from the TokenSource to every request and
// decodes responses into the typed schemas each endpoint defines. It carries
// no retry, backoff, or caching policy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
}

// New creates a Client for the given backend origin.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Tokens:     tokens,
	}
}

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Login authenticates and returns the bearer token plus identity.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out, "login"); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil, "register")
}

// Profile returns the identity behind the current token. Used to rehydrate
// the session from a persisted token on startup.
func (c *Client) Profile(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out, "fetch profile"); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// Dashboard returns the summary stats projection.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/user/dashboard", nil, &out, "fetch dashboard"); err != nil {
		return models.DashboardStats{}, err
	}
	return out, nil
}

type chatHistoryResponse struct {
	Messages []models.ChatMessage `json:"messages"`
}

// ChatHistory returns the prior coach conversation in display order.
func (c *Client) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var out chatHistoryResponse
	if err := c.do(ctx, http.MethodGet, "/coach/chat-history", nil, &out, "fetch chat history"); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// ChatReply is the response of POST /coach/chat. The server keeps the
// conversation state, so only the new message text is sent.
type ChatReply struct {
	ID       string `json:"id"`
	Response string `json:"response"`
}

// SendChat sends one message to the coach and returns the assistant reply.
func (c *Client) SendChat(ctx context.Context, message string) (ChatReply, error) {
	var out ChatReply
	body := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, "/coach/chat", body, &out, "send chat message"); err != nil {
		return ChatReply{}, err
	}
	return out, nil
}

type workoutsResponse struct {
	Workouts []models.Workout `json:"workouts"`
}

// Workouts lists the user's workout plans.
func (c *Client) Workouts(ctx context.Context) ([]models.Workout, error) {
	var out workoutsResponse
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, &out, "fetch workouts"); err != nil {
		return nil, err
	}
	return out.Workouts, nil
}

// NewWorkout is the creation payload for POST /workouts.
type NewWorkout struct {
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	Exercises string `json:"exercises"`
	Intensity string `json:"intensity"`
}

// CreateWorkout creates a workout plan and returns the created entity.
func (c *Client) CreateWorkout(ctx context.Context, w NewWorkout) (models.Workout, error) {
	var out models.Workout
	if err := c.do(ctx, http.MethodPost, "/workouts", w, &out, "create workout"); err != nil {
		return models.Workout{}, err
	}
	return out, nil
}

// StartWorkout marks a workout session as begun.
func (c *Client) StartWorkout(ctx context.Context, id string) error {
	path := fmt.Sprintf("/workouts/%s/start", url.PathEscape(id))
	return c.do(ctx, http.MethodPost, path, nil, nil, "start workout")
}

// Nutrition returns today's meals plus the daily macro totals.
func (c *Client) Nutrition(ctx context.Context) (models.NutritionSummary, error) {
	var out models.NutritionSummary
	if err := c.do(ctx, http.MethodGet, "/nutrition", nil, &out, "fetch nutrition"); err != nil {
		return models.NutritionSummary{}, err
	}
	return out, nil
}

// NewMeal is the creation payload for POST /nutrition/log-meal.
type NewMeal struct {
	FoodName string  `json:"food_name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogMeal records a meal and returns the created entity.
func (c *Client) LogMeal(ctx context.Context, m NewMeal) (models.Meal, error) {
	var out models.Meal
	if err := c.do(ctx, http.MethodPost, "/nutrition/log-meal", m, &out, "log meal"); err != nil {
		return models.Meal{}, err
	}
	return out, nil
}

// DeleteMeal removes a logged meal by id.
func (c *Client) DeleteMeal(ctx context.Context, id string) error {
	path := fmt.Sprintf("/nutrition/meals/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil, "delete meal")
}

// Analytics returns the progress analytics bundle.
func (c *Client) Analytics(ctx context.Context) (models.ProgressAnalytics, error) {
	var out models.ProgressAnalytics
	if err := c.do(ctx, http.MethodGet, "/progress/analytics", nil, &out, "fetch analytics"); err != nil {
		return models.ProgressAnalytics{}, err
	}
	return out, nil
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Every call path funnels through here so the bearer token and the
// error taxonomy are applied uniformly.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, op string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+basePath+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed errorResponse
		_ = json.Unmarshal(raw, &parsed)
		return &Error{Kind: KindServer, Op: op, Status: resp.StatusCode, Detail: parsed.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: err}
	}
	return nil
}
