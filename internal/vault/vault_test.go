package vault

import (
	"path/filepath"
	"testing"
)

func openTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := Open(filepath.Join(t.TempDir(), "vault.db"))
	if err != nil {
		t.Skipf("Skipping test, vault backend unavailable: %v", err)
	}
	t.Cleanup(func() { v.Close() })
	return v
}

func TestSaveAndLoadToken(t *testing.T) {
	v := openTestVault(t)

	if err := v.SaveToken("tok-1"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, err := v.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if got != "tok-1" {
		t.Errorf("expected tok-1, got %q", got)
	}

	// A second save replaces the stored value.
	if err := v.SaveToken("tok-2"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, err = v.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if got != "tok-2" {
		t.Errorf("expected tok-2, got %q", got)
	}
}

func TestLoadMissingTokenIsEmpty(t *testing.T) {
	v := openTestVault(t)

	got, err := v.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestDeleteToken(t *testing.T) {
	v := openTestVault(t)

	if err := v.SaveToken("tok-1"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := v.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	got, err := v.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty token after delete, got %q", got)
	}
}
