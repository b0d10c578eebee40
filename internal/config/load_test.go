package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shipway.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTempConfig(t, `
project:
  name: blog
  runtime_version: "3.11"
host:
  address: 203.0.113.10
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Project.Name != "blog" {
		t.Errorf("expected project name %q, got %q", "blog", cfg.Project.Name)
	}
	if cfg.Project.RuntimeVersion != "3.11" {
		t.Errorf("expected runtime version %q, got %q", "3.11", cfg.Project.RuntimeVersion)
	}
	if cfg.Host.Port != DefaultSSHPort {
		t.Errorf("expected default port %d, got %d", DefaultSSHPort, cfg.Host.Port)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "{{{{"},
		{"fails validation", "project:\n  name: \"\"\nhost:\n  address: 203.0.113.10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
