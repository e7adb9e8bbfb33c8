package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the config lookup at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{EnvAPIURL, EnvAddr, EnvDBPath, EnvTimeout, EnvMaxRetries} {
		t.Setenv(key, "")
	}
	// keep a stray .env in the package dir from leaking in
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "shortlist")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.PickUp != " " {
		t.Errorf("Default PickUp key = %q, want space", defaults.PickUp)
	}
	if defaults.Cancel != "esc" {
		t.Errorf("Default Cancel key = %s, want esc", defaults.Cancel)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Client.APIURL != "http://127.0.0.1:8080" {
		t.Errorf("APIURL = %s, want default", cfg.Client.APIURL)
	}
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Client.Timeout)
	}
	if cfg.Client.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.Client.MaxRetries)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `server:
  addr: "0.0.0.0:9000"
client:
  api_url: "http://store.internal:9000"
  timeout: 3s
key_mappings:
  quit: "x"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %s, want 0.0.0.0:9000", cfg.Server.Addr)
	}
	if cfg.Client.APIURL != "http://store.internal:9000" {
		t.Errorf("APIURL = %s", cfg.Client.APIURL)
	}
	if cfg.Client.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Client.Timeout)
	}
	// unspecified values fall back to defaults
	if cfg.Client.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.Client.MaxRetries)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.NextCard != "j" {
		t.Errorf("NextCard key = %s, want j (default)", cfg.KeyMappings.NextCard)
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "server: [unclosed")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `client:
  api_url: "http://from-file:1"
`)
	t.Setenv(EnvAPIURL, "http://from-env:2")
	t.Setenv(EnvTimeout, "250ms")
	t.Setenv(EnvMaxRetries, "7")
	t.Setenv(EnvDBPath, "/tmp/board.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Client.APIURL != "http://from-env:2" {
		t.Errorf("APIURL = %s, want env value", cfg.Client.APIURL)
	}
	if cfg.Client.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v, want 250ms", cfg.Client.Timeout)
	}
	if cfg.Client.MaxRetries != 7 {
		t.Errorf("MaxRetries = %d, want 7", cfg.Client.MaxRetries)
	}
	if cfg.Server.DBPath != "/tmp/board.db" {
		t.Errorf("DBPath = %s, want /tmp/board.db", cfg.Server.DBPath)
	}
}

func TestEnvOverridesInvalidValuesIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTimeout, "soon")
	t.Setenv(EnvMaxRetries, "-2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want default", cfg.Client.Timeout)
	}
	if cfg.Client.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default", cfg.Client.MaxRetries)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SHORTLIST_ADDR=127.0.0.1:7777\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	// godotenv never overrides a variable that is already set, even to ""
	if err := os.Unsetenv(EnvAddr); err != nil {
		t.Fatalf("Unsetenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(EnvAddr) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7777" {
		t.Errorf("Addr = %s, want value from .env", cfg.Server.Addr)
	}
}

func TestSaveAndReload(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Client.APIURL = "http://saved:8080"
	cfg.Client.Timeout = 42 * time.Second
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Client.APIURL != "http://saved:8080" {
		t.Errorf("APIURL = %s, want saved value", loaded.Client.APIURL)
	}
	if loaded.Client.Timeout != 42*time.Second {
		t.Errorf("Timeout = %v, want 42s", loaded.Client.Timeout)
	}
}
