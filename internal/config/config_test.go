package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Limit != 1500 {
		t.Errorf("expected default limit 1500, got %d", cfg.Limit)
	}
	if cfg.Separator != " " {
		t.Errorf("expected single-space separator, got %q", cfg.Separator)
	}
	if cfg.ElisionThreshold != 80 {
		t.Errorf("expected elision threshold 80, got %d", cfg.ElisionThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MDCHUNK_LIMIT", "250")
	t.Setenv("MDCHUNK_ELISION_PLACEHOLDER", "[snip]")

	cfg := Load()
	if cfg.Limit != 250 {
		t.Errorf("expected limit 250, got %d", cfg.Limit)
	}
	if cfg.ElisionPlaceholder != "[snip]" {
		t.Errorf("expected placeholder [snip], got %q", cfg.ElisionPlaceholder)
	}
	// Untouched values keep their defaults.
	if cfg.ElisionThreshold != 80 {
		t.Errorf("expected threshold 80, got %d", cfg.ElisionThreshold)
	}
}

func TestApplyEnv_IgnoresUnparseable(t *testing.T) {
	t.Setenv("MDCHUNK_LIMIT", "not-a-number")
	cfg := Load()
	if cfg.Limit != 1500 {
		t.Errorf("expected fallback limit 1500, got %d", cfg.Limit)
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdchunk.yaml")
	content := "limit: 99\nseparator: \"\"\nelision_threshold: 40\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limit != 99 {
		t.Errorf("expected limit 99, got %d", cfg.Limit)
	}
	if cfg.Separator != "" {
		t.Errorf("expected empty separator from file, got %q", cfg.Separator)
	}
	if cfg.ElisionThreshold != 40 {
		t.Errorf("expected threshold 40, got %d", cfg.ElisionThreshold)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Port != "8091" {
		t.Errorf("expected default port, got %q", cfg.Port)
	}
}

func TestApplyFile_MissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestApplyFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("limit: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := cfg.ApplyFile(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Limit = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero limit")
	}

	cfg = Default()
	cfg.ElisionThreshold = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}

	cfg = Default()
	cfg.Limit = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("limit 1 should be valid, got %v", err)
	}
}
