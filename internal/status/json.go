package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string        `json:"event,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	Ghost         string        `json:"ghost"`
	AlarmLevel    string        `json:"alarm_level"`
	Reading       *ReadingJSON  `json:"reading,omitempty"`
	Analysis      *AnalysisJSON `json:"analysis,omitempty"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     string        `json:"start_time"`
	Timestamp     string        `json:"timestamp"`
	MQTT          MQTTStatus    `json:"mqtt"`
	Counts        CountsJSON    `json:"scan_counts"`
	Config        ConfigJSON    `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// ReadingJSON is the JSON representation of the last sensor reading.
type ReadingJSON struct {
	EMF          int     `json:"emf"`
	TemperatureC float64 `json:"temperature_c"`
	Motion       bool    `json:"motion"`
}

// AnalysisJSON is the JSON representation of the last analysis.
type AnalysisJSON struct {
	Probability   float64 `json:"probability"`
	ActivityLevel string  `json:"activity_level"`
	GhostType     string  `json:"ghost_type,omitempty"`
}

// CountsJSON is the JSON representation of scan counts.
type CountsJSON struct {
	Scans  int `json:"scans"`
	Ghosts int `json:"ghosts"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	EMFThreshold  int     `json:"emf_threshold"`
	TempThreshold float64 `json:"temp_threshold"`
	WebChance     float64 `json:"web_chance"`
	Broker        string  `json:"broker,omitempty"`
	HTTPAddr      string  `json:"http_addr"`
	DBPath        string  `json:"db_path,omitempty"`
}

func buildInner(snap Snapshot) StatusInner {
	ghost := "CLEAR"
	if !snap.HasScanned {
		ghost = "UNKNOWN"
	} else if snap.LastAnalysis.Ghost {
		ghost = "PRESENT"
	}

	inner := StatusInner{
		Ghost:         ghost,
		AlarmLevel:    snap.AlarmLevel,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			Scans:  snap.Counts.Scans,
			Ghosts: snap.Counts.Ghosts,
		},
		Config: ConfigJSON{
			EMFThreshold:  snap.Config.EMFThreshold,
			TempThreshold: snap.Config.TempThreshold,
			WebChance:     snap.Config.WebChance,
			Broker:        snap.Config.Broker,
			HTTPAddr:      snap.Config.HTTPAddr,
			DBPath:        snap.Config.DBPath,
		},
	}

	if snap.HasScanned {
		inner.Reading = &ReadingJSON{
			EMF:          snap.LastReading.EMF,
			TemperatureC: snap.LastReading.Temperature,
			Motion:       snap.LastReading.Motion,
		}
		inner.Analysis = &AnalysisJSON{
			Probability:   snap.LastAnalysis.Probability,
			ActivityLevel: string(snap.LastAnalysis.ActivityLevel),
			GhostType:     snap.LastAnalysis.GhostType,
		}
	}

	return inner
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
