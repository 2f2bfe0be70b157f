package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.AdminPassword != DefaultAdminPassword {
		t.Errorf("admin password = %q", cfg.AdminPassword)
	}
	if cfg.APIKey != "" {
		t.Errorf("api key should default to empty, got %q", cfg.APIKey)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "model: gemini-2.0-pro\nadmin_password: \"secret\"\napi_key: abc123\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "gemini-2.0-pro" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.AdminPassword != "secret" {
		t.Errorf("admin password = %q", cfg.AdminPassword)
	}
	if cfg.APIKey != "abc123" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("AGPLAN_API_KEY", "env-key")
	t.Setenv("AGPLAN_MODEL", "gemini-env")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("api key = %q, want env value", cfg.APIKey)
	}
	if cfg.Model != "gemini-env" {
		t.Errorf("model = %q, want env value", cfg.Model)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("model: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDefault(dir); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "gemini-2.5-flash") {
		t.Error("starter config missing default model")
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed on starter config: %v", err)
	}
	if cfg.AdminPassword != DefaultAdminPassword {
		t.Errorf("admin password = %q", cfg.AdminPassword)
	}
}

func TestWriteDefaultKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("model: custom\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), custom, 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := WriteDefault(dir); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(data) != string(custom) {
		t.Error("existing config was overwritten")
	}
}
