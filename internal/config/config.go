// Package config defines service configuration and loading.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath overrides the recognition-history database location.
	// Empty means the default under the user home directory.
	DBPath string `koanf:"db_path"`

	// MinDragDistance is the minimum pointer movement, in surface units,
	// for a move event to extend a stroke. It doubles as the tap cutoff.
	MinDragDistance float64 `koanf:"min_drag_distance"`

	// GracePeriodMS is the maximum gap in milliseconds between two
	// strokes for them to combine into one multi-stroke gesture.
	GracePeriodMS int `koanf:"grace_period_ms"`

	// ScoreThreshold is the minimum similarity score for a recognition
	// to be reported as accepted.
	ScoreThreshold float64 `koanf:"score_threshold"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		DBPath:          "",
		MinDragDistance: 10,
		GracePeriodMS:   2000,
		ScoreThreshold:  0.3,
	}
}
