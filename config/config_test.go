package config

import (
	"os"
	"path/filepath"
	"testing"
)

// point CONFIG_PATH at a file that does not exist so a config.yaml in the
// working tree cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	for _, key := range []string{"API_PORT", "ALLOWED_ORIGIN", "VERBATIM_ERRORS", "SOLVER_MAX_DEPTH", "SOLVER_DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg := LoadConfig()
	if cfg.Port != "8812" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8812")
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q, want %q", cfg.AllowedOrigin, "*")
	}
	if !cfg.VerbatimErrors {
		t.Error("VerbatimErrors = false, want true by default")
	}
	if cfg.SolverMaxDepth != 1000 {
		t.Errorf("SolverMaxDepth = %d, want 1000", cfg.SolverMaxDepth)
	}
	if cfg.SolverDebug {
		t.Error("SolverDebug = true, want false by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`server:
  port: "9000"
  allowed_origin: "https://example.com"
  verbatim_errors: false
solver:
  max_depth: 50
  debug: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := LoadConfig()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.AllowedOrigin != "https://example.com" {
		t.Errorf("AllowedOrigin = %q, want file value", cfg.AllowedOrigin)
	}
	if cfg.VerbatimErrors {
		t.Error("VerbatimErrors = true, want false from file")
	}
	if cfg.SolverMaxDepth != 50 {
		t.Errorf("SolverMaxDepth = %d, want 50", cfg.SolverMaxDepth)
	}
	if !cfg.SolverDebug {
		t.Error("SolverDebug = false, want true from file")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`server:
  port: "9000"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("API_PORT", "9001")
	t.Setenv("ALLOWED_ORIGIN", "https://api.example.com")
	t.Setenv("VERBATIM_ERRORS", "false")
	t.Setenv("SOLVER_MAX_DEPTH", "25")

	cfg := LoadConfig()
	if cfg.Port != "9001" {
		t.Errorf("Port = %q, want env override %q", cfg.Port, "9001")
	}
	if cfg.AllowedOrigin != "https://api.example.com" {
		t.Errorf("AllowedOrigin = %q, want env override", cfg.AllowedOrigin)
	}
	if cfg.VerbatimErrors {
		t.Error("VerbatimErrors = true, want env override false")
	}
	if cfg.SolverMaxDepth != 25 {
		t.Errorf("SolverMaxDepth = %d, want env override 25", cfg.SolverMaxDepth)
	}
}

func TestLoadConfigBadEnvValuesIgnored(t *testing.T) {
	isolate(t)

	t.Setenv("VERBATIM_ERRORS", "not-a-bool")
	t.Setenv("SOLVER_MAX_DEPTH", "not-a-number")

	cfg := LoadConfig()
	if !cfg.VerbatimErrors {
		t.Error("VerbatimErrors = false, want default true when env is unparseable")
	}
	if cfg.SolverMaxDepth != 1000 {
		t.Errorf("SolverMaxDepth = %d, want default 1000 when env is unparseable", cfg.SolverMaxDepth)
	}
}
