// Package status provides a thread-safe status tracker for the ghost-detector
// daemon. It is read by HTTP handlers, the TUI, and MQTT system events.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
	"github.com/sweeney/ghost-detector/internal/sensor"
)

// Config contains daemon configuration for display.
type Config struct {
	EMFThreshold  int
	TempThreshold float64
	WebChance     float64
	Broker        string
	HTTPAddr      string
	DBPath        string
}

// Counts tracks scans and detections since startup.
type Counts struct {
	Scans  int
	Ghosts int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	HasScanned    bool
	LastReading   sensor.Reading
	LastAnalysis  logic.Analysis
	Counts        Counts
	AlarmLevel    string // alarm.Level as string to avoid importing internal/alarm
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime:  startTime,
			AlarmLevel: "NONE",
			Config:     cfg,
		},
	}
}

// RecordScan updates the tracker after one scan.
func (t *Tracker) RecordScan(result logic.ScanResult, alarmLevel string) {
	t.mu.Lock()
	t.snap.HasScanned = true
	t.snap.LastReading = result.Reading
	t.snap.LastAnalysis = result.Analysis
	t.snap.AlarmLevel = alarmLevel
	t.snap.Counts.Scans++
	if result.Analysis.Ghost {
		t.snap.Counts.Ghosts++
	}
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
