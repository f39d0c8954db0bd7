package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramavadhoota/fitflow/internal/api"
	"github.com/Ramavadhoota/fitflow/internal/config"
	"github.com/Ramavadhoota/fitflow/internal/store"
	"github.com/Ramavadhoota/fitflow/internal/tui"
	"github.com/Ramavadhoota/fitflow/internal/vault"
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitflow",
		Short: "Terminal client for the FitFlow fitness coach",
		Long: `fitflow is a terminal client for the FitFlow backend: dashboard,
workout plans, nutrition tracking, progress analytics, and the AI coach chat.`,
		RunE: runTUI,
	}

	rootCmd.AddCommand(NewShowCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	app, cleanup, err := buildApp()
	if err != nil {
		return err
	}
	defer cleanup()

	// Rehydrate the session from the persisted token, if one is stored. A
	// token the backend no longer accepts is dropped so the app starts
	// cleanly unauthenticated.
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	restoreSession(ctx, app)

	return tui.Run(app)
}

// buildApp wires the config, vault, session, stores, and gateway client. The
// returned cleanup closes the vault and the log file.
func buildApp() (*tui.App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	v, err := vault.Open(cfg.VaultPath())
	if err != nil {
		return nil, nil, fmt.Errorf("open credential vault: %w", err)
	}

	logger, logClose := openLogger(cfg.LogFile)

	session := store.NewSession(v)
	app := &tui.App{
		Session:   session,
		Workouts:  &store.Workouts{},
		Nutrition: &store.Nutrition{},
		Progress:  &store.Progress{},
		Client:    api.New(cfg.BaseURL, session),
		Logger:    logger,
	}

	cleanup := func() {
		v.Close()
		logClose()
	}
	return app, cleanup, nil
}

// openLogger directs logs to a file; the TUI owns the terminal. A failure to
// open the file silently drops logs rather than corrupting the display.
func openLogger(path string) (*log.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }
}

// restoreSession loads the persisted token and confirms it against the
// profile endpoint. Any failure leaves the session unauthenticated; a token
// the server rejected is deleted.
func restoreSession(ctx context.Context, app *tui.App) {
	token, err := app.Session.StoredToken()
	if err != nil {
		app.Logf("load stored token: %v", err)
		return
	}
	if token == "" {
		return
	}

	app.Session.SetToken(token)
	user, err := app.Client.Profile(ctx)
	if err != nil {
		app.Logf("restore session: %v", err)
		app.Session.SetToken("")
		if api.IsServerError(err) {
			// The backend rejected the token; it is dead, drop it.
			app.Session.Logout()
		}
		return
	}
	app.Session.SetUser(user)
}
