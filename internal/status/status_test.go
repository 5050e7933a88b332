package status

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
	"github.com/sweeney/ghost-detector/internal/sensor"
)

func testConfig() Config {
	return Config{
		EMFThreshold:  70,
		TempThreshold: 20.0,
		WebChance:     0.7,
		Broker:        "tcp://192.168.1.200:1883",
		HTTPAddr:      ":8080",
		DBPath:        "ghost-detector.db",
	}
}

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

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTracker(start, testConfig())

	snap := tr.Snapshot()
	if snap.HasScanned {
		t.Error("new tracker should not have scanned")
	}
	if snap.AlarmLevel != "NONE" {
		t.Errorf("alarm level: got %q, want NONE", snap.AlarmLevel)
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("start time: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.EMFThreshold != 70 {
		t.Errorf("config emf threshold: got %d, want 70", snap.Config.EMFThreshold)
	}
}

func TestRecordScanCounts(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	ghost := sampleResult()
	clear := sampleResult()
	clear.Analysis.Ghost = false

	tr.RecordScan(ghost, "CRITICAL")
	tr.RecordScan(clear, "NONE")
	tr.RecordScan(ghost, "CRITICAL")

	snap := tr.Snapshot()
	if snap.Counts.Scans != 3 {
		t.Errorf("scans: got %d, want 3", snap.Counts.Scans)
	}
	if snap.Counts.Ghosts != 2 {
		t.Errorf("ghosts: got %d, want 2", snap.Counts.Ghosts)
	}
	if !snap.HasScanned {
		t.Error("expected HasScanned=true")
	}
	if snap.AlarmLevel != "CRITICAL" {
		t.Errorf("alarm level: got %q, want CRITICAL", snap.AlarmLevel)
	}
	if snap.LastReading.EMF != 80 {
		t.Errorf("last reading EMF: got %d, want 80", snap.LastReading.EMF)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	snap := tr.Snapshot()

	tr.RecordScan(sampleResult(), "CRITICAL")

	if snap.HasScanned {
		t.Error("earlier snapshot mutated by later update")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)
	tr := NewTracker(start, testConfig())

	up := tr.Snapshot().Uptime()
	if up < 90*time.Second || up > 95*time.Second {
		t.Errorf("uptime: got %v, want ~90s", up)
	}
}

func TestFormatJSONBeforeScan(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	data := FormatJSON(tr.Snapshot())

	var sj StatusJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if sj.Status.Ghost != "UNKNOWN" {
		t.Errorf("ghost before scan: got %q, want UNKNOWN", sj.Status.Ghost)
	}
	if sj.Status.Reading != nil {
		t.Error("reading should be omitted before the first scan")
	}
	if sj.Status.Analysis != nil {
		t.Error("analysis should be omitted before the first scan")
	}
}

func TestFormatJSONAfterScan(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	tr.RecordScan(sampleResult(), "CRITICAL")
	tr.SetMQTTConnected(true)

	data := FormatJSON(tr.Snapshot())

	var sj StatusJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if sj.Status.Ghost != "PRESENT" {
		t.Errorf("ghost: got %q, want PRESENT", sj.Status.Ghost)
	}
	if sj.Status.AlarmLevel != "CRITICAL" {
		t.Errorf("alarm level: got %q, want CRITICAL", sj.Status.AlarmLevel)
	}
	if sj.Status.Reading == nil || sj.Status.Reading.EMF != 80 {
		t.Errorf("reading: got %+v", sj.Status.Reading)
	}
	if sj.Status.Analysis == nil || sj.Status.Analysis.Probability != 90.1 {
		t.Errorf("analysis: got %+v", sj.Status.Analysis)
	}
	if !sj.Status.MQTT.Connected {
		t.Error("expected mqtt connected")
	}
	if sj.Status.Counts.Scans != 1 || sj.Status.Counts.Ghosts != 1 {
		t.Errorf("counts: got %+v", sj.Status.Counts)
	}
}

func TestFormatJSONClearVerdict(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	result := sampleResult()
	result.Analysis.Ghost = false
	tr.RecordScan(result, "NONE")

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sj.Status.Ghost != "CLEAR" {
		t.Errorf("ghost: got %q, want CLEAR", sj.Status.Ghost)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	data := FormatStatusEvent(tr.Snapshot(), "STARTUP", "")

	if strings.Contains(string(data), "\n") {
		t.Error("status event payload should be compact JSON")
	}

	var sj StatusJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sj.Status.Event != "STARTUP" {
		t.Errorf("event: got %q, want STARTUP", sj.Status.Event)
	}
}
