package web

import (
	"encoding/json"
	"time"

	"github.com/sweeney/ghost-detector/internal/alarm"
	"github.com/sweeney/ghost-detector/internal/scan"
	"github.com/sweeney/ghost-detector/internal/store"
)

// ScanJSON is the /api/scan response body.
type ScanJSON struct {
	Timestamp       string   `json:"timestamp"`
	EMF             int      `json:"emf"`
	TemperatureC    float64  `json:"temperature_c"`
	Motion          bool     `json:"motion"`
	Ghost           bool     `json:"ghost"`
	Probability     float64  `json:"probability"`
	GhostType       string   `json:"ghost_type,omitempty"`
	ActivityLevel   string   `json:"activity_level"`
	AlarmLevel      string   `json:"alarm_level"`
	Recommendations []string `json:"recommendations,omitempty"`
}

func formatScanJSON(out scan.Output) []byte {
	sj := ScanJSON{
		Timestamp:       out.Result.Timestamp.UTC().Format(time.RFC3339),
		EMF:             out.Result.Reading.EMF,
		TemperatureC:    out.Result.Reading.Temperature,
		Motion:          out.Result.Reading.Motion,
		Ghost:           out.Result.Analysis.Ghost,
		Probability:     out.Result.Analysis.Probability,
		GhostType:       out.Result.Analysis.GhostType,
		ActivityLevel:   string(out.Result.Analysis.ActivityLevel),
		AlarmLevel:      out.Level.String(),
		Recommendations: out.Result.Analysis.Recommendations,
	}
	data, _ := json.MarshalIndent(sj, "", "  ")
	return data
}

// HistoryEntryJSON is one row in the /api/history response.
type HistoryEntryJSON struct {
	Timestamp     string  `json:"timestamp"`
	EMF           int     `json:"emf"`
	TemperatureC  float64 `json:"temperature_c"`
	Motion        bool    `json:"motion"`
	Ghost         bool    `json:"ghost"`
	Probability   float64 `json:"probability"`
	GhostType     string  `json:"ghost_type,omitempty"`
	ActivityLevel string  `json:"activity_level"`
}

func formatHistoryJSON(scans []store.Scan) []byte {
	entries := make([]HistoryEntryJSON, 0, len(scans))
	for _, sc := range scans {
		entries = append(entries, HistoryEntryJSON{
			Timestamp:     sc.Timestamp.UTC().Format(time.RFC3339),
			EMF:           sc.EMF,
			TemperatureC:  sc.Temperature,
			Motion:        sc.Motion,
			Ghost:         sc.Ghost,
			Probability:   sc.Probability,
			GhostType:     sc.GhostType,
			ActivityLevel: sc.ActivityLevel,
		})
	}
	data, _ := json.MarshalIndent(entries, "", "  ")
	return data
}

func formatReportJSON(report store.Report) []byte {
	data, _ := json.MarshalIndent(report, "", "  ")
	return data
}

// AlertsJSON is the /api/alerts response body.
type AlertsJSON struct {
	Level          string      `json:"level"`
	ActiveAlerts   int         `json:"active_alerts"`
	Unacknowledged int         `json:"unacknowledged"`
	Alerts         []AlertJSON `json:"alerts"`
}

// AlertJSON is one alert entry.
type AlertJSON struct {
	Timestamp    string `json:"timestamp"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	Acknowledged bool   `json:"acknowledged"`
}

func formatAlertsJSON(st alarm.Status, alerts []alarm.Alert) []byte {
	aj := AlertsJSON{
		Level:          st.Level.String(),
		ActiveAlerts:   st.ActiveAlerts,
		Unacknowledged: st.Unacknowledged,
		Alerts:         make([]AlertJSON, 0, len(alerts)),
	}
	for _, a := range alerts {
		aj.Alerts = append(aj.Alerts, AlertJSON{
			Timestamp:    a.Timestamp.UTC().Format(time.RFC3339),
			Message:      a.Message,
			Type:         a.Type,
			Acknowledged: a.Acknowledged,
		})
	}
	data, _ := json.MarshalIndent(aj, "", "  ")
	return data
}
