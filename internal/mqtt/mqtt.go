// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
)

// Topic is the MQTT topic for scan events.
const Topic = "paranormal/ghost/detector/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "paranormal/ghost/detector/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a scan event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(result logic.ScanResult) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload is the MQTT message payload structure for scan events.
type Payload struct {
	Ghost GhostPayload `json:"ghost"`
}

// GhostPayload contains the scan event details.
type GhostPayload struct {
	Timestamp     string  `json:"timestamp"`
	EMF           int     `json:"emf"`
	TemperatureC  float64 `json:"temperature_c"`
	Motion        bool    `json:"motion"`
	Detected      bool    `json:"detected"`
	Probability   float64 `json:"probability"`
	GhostType     string  `json:"ghost_type,omitempty"`
	ActivityLevel string  `json:"activity_level"`
}

// FormatPayload creates the JSON payload for a scan event.
func FormatPayload(result logic.ScanResult) ([]byte, error) {
	payload := Payload{
		Ghost: GhostPayload{
			Timestamp:     result.Timestamp.UTC().Format(time.RFC3339),
			EMF:           result.Reading.EMF,
			TemperatureC:  result.Reading.Temperature,
			Motion:        result.Reading.Motion,
			Detected:      result.Analysis.Ghost,
			Probability:   result.Analysis.Probability,
			GhostType:     result.Analysis.GhostType,
			ActivityLevel: string(result.Analysis.ActivityLevel),
		},
	}
	return json.Marshal(payload)
}

// SystemPayload is the MQTT message payload for system events without a
// full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
