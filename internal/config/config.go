package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000"

// Config holds the client-side settings loaded from the environment.
type Config struct {
	BaseURL string // backend origin, /api/v1 is appended by the API client
	DataDir string // where the credential vault lives
	LogFile string // the TUI owns the terminal, so logs go to a file
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine, env vars alone are a valid setup.
	_ = godotenv.Load()

	dataDir := getEnv("FITFLOW_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fitflow")
	}

	return &Config{
		BaseURL: getEnv("FITFLOW_API_URL", defaultBaseURL),
		DataDir: dataDir,
		LogFile: getEnv("FITFLOW_LOG_FILE", filepath.Join(dataDir, "fitflow.log")),
	}, nil
}

// VaultPath is the location of the DuckDB credential vault.
func (c *Config) VaultPath() string {
	return filepath.Join(c.DataDir, "vault.db")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
