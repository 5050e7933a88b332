package mqtt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
	"github.com/sweeney/ghost-detector/internal/sensor"
)

func sampleResult() logic.ScanResult {
	return logic.ScanResult{
		Timestamp: time.Date(2026, 3, 1, 22, 15, 0, 0, time.UTC),
		Reading:   sensor.Reading{EMF: 80, Temperature: 15.5, Motion: true},
		Analysis: logic.Analysis{
			Ghost:         true,
			Probability:   90.1,
			ActivityLevel: logic.LevelCritical,
			GhostType:     "Wraith",
		},
	}
}

func TestFormatPayload(t *testing.T) {
	data, err := FormatPayload(sampleResult())
	if err != nil {
		t.Fatalf("format payload: %v", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.Ghost.Timestamp != "2026-03-01T22:15:00Z" {
		t.Errorf("timestamp: got %q", p.Ghost.Timestamp)
	}
	if p.Ghost.EMF != 80 {
		t.Errorf("emf: got %d, want 80", p.Ghost.EMF)
	}
	if p.Ghost.TemperatureC != 15.5 {
		t.Errorf("temperature: got %v, want 15.5", p.Ghost.TemperatureC)
	}
	if !p.Ghost.Motion {
		t.Error("expected motion=true")
	}
	if !p.Ghost.Detected {
		t.Error("expected detected=true")
	}
	if p.Ghost.Probability != 90.1 {
		t.Errorf("probability: got %v, want 90.1", p.Ghost.Probability)
	}
	if p.Ghost.GhostType != "Wraith" {
		t.Errorf("ghost_type: got %q, want Wraith", p.Ghost.GhostType)
	}
	if p.Ghost.ActivityLevel != "Critical" {
		t.Errorf("activity_level: got %q, want Critical", p.Ghost.ActivityLevel)
	}
}

func TestFormatPayloadOmitsEmptyGhostType(t *testing.T) {
	result := sampleResult()
	result.Analysis.GhostType = ""

	data, err := FormatPayload(result)
	if err != nil {
		t.Fatalf("format payload: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["ghost"]["ghost_type"]; ok {
		t.Error("empty ghost_type should be omitted")
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	data, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("format system payload: %v", err)
	}

	var p SystemPayload
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", p.System.Event)
	}
	if p.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", p.System.Reason)
	}
	if p.System.Timestamp != "2026-03-01T22:00:00Z" {
		t.Errorf("timestamp: got %q", p.System.Timestamp)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"status":{"event":"STARTUP"}}`)
	data, err := FormatSystemPayload(SystemEvent{RawPayload: raw})
	if err != nil {
		t.Fatalf("format system payload: %v", err)
	}
	if string(data) != string(raw) {
		t.Errorf("raw payload not passed through: got %s", data)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()
	result := sampleResult()

	if err := f.Publish(result); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(f.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(f.Results))
	}
	if len(f.Payloads) != 1 {
		t.Fatalf("expected 1 payload, got %d", len(f.Payloads))
	}

	if err := f.PublishSystem(SystemEvent{Event: "STARTUP"}); err != nil {
		t.Fatalf("publish system: %v", err)
	}
	if len(f.SystemEvents) != 1 {
		t.Fatalf("expected 1 system event, got %d", len(f.SystemEvents))
	}
}

func TestFakePublisherErrors(t *testing.T) {
	f := NewFakePublisher()
	wantErr := errors.New("broker down")
	f.PublishError = wantErr

	if err := f.Publish(sampleResult()); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
	if len(f.Results) != 0 {
		t.Error("failed publish should not record the result")
	}
}

func TestFakePublisherReset(t *testing.T) {
	f := NewFakePublisher()
	f.Publish(sampleResult())
	f.Connected = true
	f.Close()

	f.Reset()

	if len(f.Results) != 0 || f.Closed || f.IsConnected() {
		t.Error("reset did not clear state")
	}
}

func TestTopics(t *testing.T) {
	if Topic != "paranormal/ghost/detector/events" {
		t.Errorf("topic: got %q", Topic)
	}
	if TopicSystem != "paranormal/ghost/detector/system" {
		t.Errorf("system topic: got %q", TopicSystem)
	}
}
