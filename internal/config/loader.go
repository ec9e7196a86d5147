package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCRAWL_CONFIG is set
//  3. env (prefix SCRAWL_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SCRAWL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: SCRAWL_ADDR, SCRAWL_SCORE_THRESHOLD, ...
	// Map env keys like SCRAWL_GRACE_PERIOD_MS -> grace_period_ms,
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("SCRAWL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "scrawl_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.ScoreThreshold < 0 || cfg.ScoreThreshold > 1 {
		return nil, errors.New("score_threshold must be in [0,1]")
	}
	if cfg.MinDragDistance <= 0 {
		return nil, errors.New("min_drag_distance must be positive")
	}
	// NewSession treats a zero grace period as unset, so zero is
	// rejected rather than silently replaced by the session default.
	if cfg.GracePeriodMS <= 0 {
		return nil, errors.New("grace_period_ms must be positive")
	}
	return &cfg, nil
}
