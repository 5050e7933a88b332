// Package scan runs the read, detect, present pipeline. One Scan per
// trigger; console enter, TUI keypress, and HTTP POST are all triggers.
package scan

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sweeney/ghost-detector/internal/alarm"
	"github.com/sweeney/ghost-detector/internal/logic"
	"github.com/sweeney/ghost-detector/internal/mqtt"
	"github.com/sweeney/ghost-detector/internal/sensor"
	"github.com/sweeney/ghost-detector/internal/status"
	"github.com/sweeney/ghost-detector/internal/store"
)

// Output is everything produced by one scan.
type Output struct {
	Result    logic.ScanResult
	Level     alarm.Level
	Escalated bool
}

// Scanner wires the pipeline. Store, Publisher, and Tracker are optional;
// Sensors and Alarm are required.
type Scanner struct {
	Sensors    sensor.Reader
	Thresholds logic.Thresholds
	Alarm      *alarm.System
	Store      *store.Store
	Publisher  mqtt.Publisher
	Tracker    *status.Tracker

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// Scan runs one full cycle: read the sensors, detect and analyze, update
// the alarm and tracker, persist, and publish. Persistence and publish
// failures are logged but do not fail the scan.
func (s *Scanner) Scan(ctx context.Context) (Output, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	r, err := s.Sensors.Read()
	if err != nil {
		return Output{}, fmt.Errorf("read sensors: %w", err)
	}

	t := now()
	result := logic.ScanResult{
		Timestamp: t,
		Reading:   r,
		Analysis:  logic.Analyze(r, s.Thresholds),
	}

	level, escalated := s.Alarm.Trigger(result.Analysis, t)

	if s.Tracker != nil {
		s.Tracker.RecordScan(result, level.String())
	}

	if s.Store != nil {
		if err := s.Store.LogScan(ctx, result); err != nil {
			log.Printf("scan log error: %v", err)
		}
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish(result); err != nil {
			log.Printf("publish error: %v", err)
		}
	}

	return Output{Result: result, Level: level, Escalated: escalated}, nil
}
