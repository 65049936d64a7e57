package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PROJECTMAN_SERVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.Server.BaseURL, defaultBaseURL)
	}
	if cfg.Server.Timeout() != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Server.Timeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("PROJECTMAN_SERVER", "")

	dir := filepath.Join(configHome, "projectman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "server:\n  base_url: https://pm.example.com/api\n  timeout_seconds: 30\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "https://pm.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Server.TimeoutSeconds)
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PROJECTMAN_SERVER", "https://override.example.com/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "https://override.example.com/api" {
		t.Errorf("BaseURL = %q, want env override", cfg.Server.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PROJECTMAN_SERVER", "")

	cfg := &Config{Server: ServerConfig{BaseURL: "https://saved.example.com/api", TimeoutSeconds: 20}}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.BaseURL != cfg.Server.BaseURL {
		t.Errorf("BaseURL = %q, want %q", loaded.Server.BaseURL, cfg.Server.BaseURL)
	}
	if loaded.Server.TimeoutSeconds != 20 {
		t.Errorf("TimeoutSeconds = %d, want 20", loaded.Server.TimeoutSeconds)
	}
}
