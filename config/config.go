package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults applied when the JSON file omits a value.
const (
	DefaultFrameSkip          = 1
	DefaultCentroidSeparation = 17
	DefaultVideoFPS           = 30
)

// Config is the full run configuration, loaded once at startup and
// read-only afterwards. The JSON schema matches the original deployment's
// config.json.
type Config struct {
	VideoPath string  `json:"videoPath"`
	VideoFPS  float64 `json:"videoFPS"`
	ModelPath string  `json:"modelPath"`

	FrameSkip          int     `json:"frameSkip"`
	StartROILineDepth  int     `json:"startROILineDepth"`
	EndROILineDepth    int     `json:"endROILineDepth"`
	CentroidSeparation float64 `json:"centroidSeparation"`

	// CountLogPath is where per-frame count lines are appended. Empty
	// means stdout only.
	CountLogPath string `json:"countLogPath"`
	// ListenAddr enables the MJPEG preview server when non-empty, e.g.
	// ":8080".
	ListenAddr string `json:"listenAddr"`
}

// Load reads and validates a config file, applying defaults for omitted
// values. Any malformed or out-of-range value fails fast here so the
// counting core can assume validated scalars.
//
// StartROILineDepth < EndROILineDepth is deliberately not checked: an
// inverted band yields an always-empty counting region, which is a
// legitimate (if useless) configuration rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	cfg := &Config{
		FrameSkip:          DefaultFrameSkip,
		CentroidSeparation: DefaultCentroidSeparation,
		VideoFPS:           DefaultVideoFPS,
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.VideoPath == "" {
		return fmt.Errorf("videoPath is required")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("modelPath is required")
	}
	if c.FrameSkip < 1 {
		return fmt.Errorf("frameSkip must be >= 1, got %d", c.FrameSkip)
	}
	if c.CentroidSeparation <= 0 {
		return fmt.Errorf("centroidSeparation must be positive, got %v", c.CentroidSeparation)
	}
	if c.VideoFPS <= 0 {
		return fmt.Errorf("videoFPS must be positive, got %v", c.VideoFPS)
	}
	return nil
}
