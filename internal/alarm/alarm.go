// Package alarm escalates ghost analyses into alarm levels and keeps a
// bounded history of alerts and level changes.
package alarm

import (
	"sync"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
)

// Level is the alarm severity, ordered so escalation compares numerically.
type Level int

const (
	LevelNone Level = iota
	LevelWarning
	LevelCritical
	LevelEmergency
)

// String returns the canonical level name.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARNING"
	case LevelCritical:
		return "CRITICAL"
	case LevelEmergency:
		return "EMERGENCY"
	default:
		return "NONE"
	}
}

// levelFor maps a probability score to an alarm level. The boundaries are
// strict: a probability of exactly 60 stays at NONE.
func levelFor(probability float64) Level {
	switch {
	case probability > 90:
		return LevelEmergency
	case probability > 80:
		return LevelCritical
	case probability > 60:
		return LevelWarning
	default:
		return LevelNone
	}
}

// Alert is one notification kept in the active ring.
type Alert struct {
	Timestamp    time.Time
	Message      string
	Type         string // "warning", "critical", "emergency", "info"
	Acknowledged bool
}

// LevelChange records one alarm level transition.
type LevelChange struct {
	Timestamp   time.Time
	From        Level
	To          Level
	Probability float64
	GhostType   string
}

// Status is a point-in-time view of the alarm system.
type Status struct {
	Level          Level
	ActiveAlerts   int
	Unacknowledged int
	RecentChanges  []LevelChange
}

const (
	maxActiveAlerts = 20
	maxHistory      = 100
	recentChanges   = 5
)

// System tracks the current alarm level behind a mutex.
type System struct {
	mu      sync.Mutex
	level   Level
	alerts  *alertRing
	history []LevelChange
}

// NewSystem creates an alarm system at LevelNone.
func NewSystem() *System {
	return &System{
		alerts: newAlertRing(maxActiveAlerts),
	}
}

// Trigger updates the alarm level from an analysis. It records an alert
// when the level is above NONE and a history entry on every level change.
// Returns the new level and whether it escalated.
func (s *System) Trigger(a logic.Analysis, now time.Time) (Level, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.level
	s.level = levelFor(a.Probability)

	switch s.level {
	case LevelEmergency:
		s.addAlert(now, "🚨 EMERGENCY: Extreme paranormal activity detected!", "emergency")
	case LevelCritical:
		s.addAlert(now, "⚠️ CRITICAL: Ghost confirmed - immediate attention required", "critical")
	case LevelWarning:
		s.addAlert(now, "📢 WARNING: Significant paranormal activity detected", "warning")
	}

	if previous != s.level {
		s.history = append(s.history, LevelChange{
			Timestamp:   now,
			From:        previous,
			To:          s.level,
			Probability: a.Probability,
			GhostType:   a.GhostType,
		})
		if len(s.history) > maxHistory {
			s.history = s.history[len(s.history)-maxHistory:]
		}
	}

	return s.level, s.level > previous
}

func (s *System) addAlert(now time.Time, message, alertType string) {
	s.alerts.push(Alert{
		Timestamp: now,
		Message:   message,
		Type:      alertType,
	})
}

// Acknowledge marks the i-th active alert (oldest first) as acknowledged.
func (s *System) Acknowledge(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.alerts.at(i)
	if a == nil {
		return false
	}
	a.Acknowledged = true
	return true
}

// Clear resets the level to NONE and drops all active alerts, leaving a
// single info alert behind.
func (s *System) Clear(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = LevelNone
	s.alerts.clear()
	s.addAlert(now, "✅ All alarms cleared", "info")
}

// Alerts returns the active alerts, oldest first. Acknowledged alerts are
// filtered out unless includeAcknowledged is set.
func (s *System) Alerts(includeAcknowledged bool) []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.alerts.items()
	if includeAcknowledged {
		return all
	}

	var active []Alert
	for _, a := range all {
		if !a.Acknowledged {
			active = append(active, a)
		}
	}
	return active
}

// Status returns a snapshot of the alarm system.
func (s *System) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	unacked := 0
	for _, a := range s.alerts.items() {
		if !a.Acknowledged {
			unacked++
		}
	}

	recent := s.history
	if len(recent) > recentChanges {
		recent = recent[len(recent)-recentChanges:]
	}
	changes := make([]LevelChange, len(recent))
	copy(changes, recent)

	return Status{
		Level:          s.level,
		ActiveAlerts:   s.alerts.len(),
		Unacknowledged: unacked,
		RecentChanges:  changes,
	}
}

// Level returns the current alarm level.
func (s *System) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}
