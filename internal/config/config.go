// Package config loads daemon configuration from environment variables.
// Flags in cmd/ghost-detector override whatever is set here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all tunables for the ghost-detector daemon.
// Detection thresholds default to the documented rule (EMF > 70,
// temperature < 20.0 °C, motion required); the comparison operators are
// fixed, only the constants move.
type Config struct {
	// Detection thresholds.
	EMFThreshold  int     `env:"GHOST_EMF_THRESHOLD" envDefault:"70"`
	TempThreshold float64 `env:"GHOST_TEMP_THRESHOLD" envDefault:"20.0"`

	// Web scanner probability threshold: the page reports a ghost when its
	// own random draw is strictly greater than this.
	WebScanChance float64 `env:"GHOST_WEB_CHANCE" envDefault:"0.7"`

	// Seed for the simulated sensors. 0 means seed from the clock.
	Seed int64 `env:"GHOST_SEED" envDefault:"0"`

	// Broker is the MQTT broker address. Empty disables publishing.
	Broker string `env:"GHOST_BROKER"`

	// HTTPAddr is the status/web server address. Empty disables it.
	HTTPAddr string `env:"GHOST_HTTP" envDefault:":8080"`

	// DBPath is the SQLite scan log path. Empty disables persistence.
	DBPath string `env:"GHOST_DB" envDefault:"ghost-detector.db"`

	// MotionPin is the BCM pin for a hardware PIR motion sensor.
	// Negative means simulated motion.
	MotionPin int `env:"GHOST_MOTION_PIN" envDefault:"-1"`
}

// FromEnv parses configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
