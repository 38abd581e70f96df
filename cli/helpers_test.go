package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultVaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultVaultPath()
	if err != nil {
		t.Fatalf("DefaultVaultPath failed: %v", err)
	}
	if !strings.HasPrefix(path, home) {
		t.Errorf("path %q not under home %q", path, home)
	}
	if filepath.Base(path) != "vault.dat" {
		t.Errorf("unexpected file name in %q", path)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("config dir not created: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("config dir mode = %o, want 0700", info.Mode().Perm())
	}
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	logPath, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath failed: %v", err)
	}
	vaultPath, _ := DefaultVaultPath()
	if filepath.Dir(logPath) != filepath.Dir(vaultPath) {
		t.Errorf("log %q and vault %q in different directories", logPath, vaultPath)
	}
}
