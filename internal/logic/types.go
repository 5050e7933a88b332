// Package logic contains pure detection logic for the ghost detector.
// This package has NO external dependencies (no GPIO, MQTT, OS, or clock).
package logic

import (
	"time"

	"github.com/sweeney/ghost-detector/internal/sensor"
)

// Thresholds hold the detection rule constants. The comparison operators
// are fixed (strict > for EMF, strict < for temperature); only the
// constants are configurable.
type Thresholds struct {
	EMF         int     // ghost region requires EMF strictly above this
	Temperature float64 // ghost region requires temperature strictly below this
}

// DefaultThresholds is the documented detection rule: EMF > 70,
// temperature < 20.0 °C, motion present.
var DefaultThresholds = Thresholds{
	EMF:         70,
	Temperature: 20.0,
}

// Level describes the paranormal activity level derived from the
// probability score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Analysis is the full result of analyzing one reading.
type Analysis struct {
	Ghost         bool
	Probability   float64 // [0,100], one decimal place
	ActivityLevel Level
	GhostType     string // empty below the classification floor
	Evidence      []string
	// Recommendations are investigation advice per probability band,
	// empty below the classification floor.
	Recommendations []string
}

// Input aliases a sensor reading for callers that only import logic.
type Input = sensor.Reading

// ScanResult is the outcome of one scan: the reading that was taken and
// the analysis derived from it.
type ScanResult struct {
	Timestamp time.Time
	Reading   Input
	Analysis  Analysis
}
