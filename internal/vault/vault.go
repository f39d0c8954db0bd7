// Package vault persists the bearer token between runs, standing in for the
// browser's localStorage. It is a single-table DuckDB file under the data dir.
package vault

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// tokenKey is the fixed storage key the token lives under.
const tokenKey = "token"

// Vault is a durable key/value store for credentials.
type Vault struct {
	db *sql.DB
}

// Open creates or opens the vault at path, creating parent directories as
// needed. Pass an empty path for an in-memory vault (tests).
func Open(path string) (*Vault, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create vault directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	// DuckDB works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS credentials (
		name  VARCHAR PRIMARY KEY,
		value VARCHAR NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize vault schema: %w", err)
	}

	return &Vault{db: db}, nil
}

// Close releases the underlying database handle.
func (v *Vault) Close() error {
	return v.db.Close()
}

// SaveToken stores the bearer token, replacing any previous one.
func (v *Vault) SaveToken(token string) error {
	if _, err := v.db.Exec(
		`INSERT OR REPLACE INTO credentials (name, value) VALUES (?, ?)`,
		tokenKey, token,
	); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LoadToken returns the persisted token, or "" when none is stored.
func (v *Vault) LoadToken() (string, error) {
	var token string
	err := v.db.QueryRow(
		`SELECT value FROM credentials WHERE name = ?`, tokenKey,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the persisted token. Deleting a missing token is not an
// error.
func (v *Vault) DeleteToken() error {
	if _, err := v.db.Exec(
		`DELETE FROM credentials WHERE name = ?`, tokenKey,
	); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
