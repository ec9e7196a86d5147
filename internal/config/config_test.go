package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.MinDragDistance != 10 {
		t.Errorf("expected default min drag distance 10, got %f", cfg.MinDragDistance)
	}
	if cfg.GracePeriodMS != 2000 {
		t.Errorf("expected default grace period 2000ms, got %d", cfg.GracePeriodMS)
	}
	if cfg.ScoreThreshold != 0.3 {
		t.Errorf("expected default score threshold 0.3, got %f", cfg.ScoreThreshold)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCRAWL_ADDR", ":9090")
	t.Setenv("SCRAWL_SCORE_THRESHOLD", "0.45")
	t.Setenv("SCRAWL_GRACE_PERIOD_MS", "1500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr ':9090', got %q", cfg.Addr)
	}
	if cfg.ScoreThreshold != 0.45 {
		t.Errorf("expected score threshold 0.45, got %f", cfg.ScoreThreshold)
	}
	if cfg.GracePeriodMS != 1500 {
		t.Errorf("expected grace period 1500ms, got %d", cfg.GracePeriodMS)
	}

	// Untouched fields keep their defaults
	if cfg.MinDragDistance != 10 {
		t.Errorf("expected default min drag distance 10, got %f", cfg.MinDragDistance)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrawl.yaml")
	content := `
addr: ":7070"
min_drag_distance: 6
score_threshold: 0.25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("SCRAWL_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Errorf("expected addr ':7070', got %q", cfg.Addr)
	}
	if cfg.MinDragDistance != 6 {
		t.Errorf("expected min drag distance 6, got %f", cfg.MinDragDistance)
	}
	if cfg.ScoreThreshold != 0.25 {
		t.Errorf("expected score threshold 0.25, got %f", cfg.ScoreThreshold)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrawl.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("SCRAWL_CONFIG", path)
	t.Setenv("SCRAWL_ADDR", ":6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Addr != ":6060" {
		t.Errorf("expected env to win over file, got %q", cfg.Addr)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty addr", "SCRAWL_ADDR", ""},
		{"threshold above one", "SCRAWL_SCORE_THRESHOLD", "1.5"},
		{"negative threshold", "SCRAWL_SCORE_THRESHOLD", "-0.1"},
		{"zero drag distance", "SCRAWL_MIN_DRAG_DISTANCE", "0"},
		{"negative grace period", "SCRAWL_GRACE_PERIOD_MS", "-100"},
		// Zero would be silently replaced by the session default
		{"zero grace period", "SCRAWL_GRACE_PERIOD_MS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected validation error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("SCRAWL_CONFIG", "/nonexistent/scrawl.yaml")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}
