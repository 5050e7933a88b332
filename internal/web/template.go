package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/ghost-detector/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"temp": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Ghost Detector</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.ghost { color: red; font-weight: bold; }
.clear { color: green; }
.unknown { color: orange; }
.connected { color: green; }
.disconnected { color: red; }
button { font-family: monospace; font-size: 1em; padding: 6px 14px; }
#quick-result { margin-left: 1em; font-weight: bold; }
</style>
</head>
<body>
<h1>👻 Ghost Detector</h1>

<h2>Quick Scan</h2>
<p>
<button id="quick-scan">Scan</button>
<span id="quick-result"></span>
</p>

<h2>Last Reading</h2>
{{if .HasScanned}}
<table>
<tr><th>EMF Level</th><td>{{.LastReading.EMF}}</td></tr>
<tr><th>Temperature</th><td>{{temp .LastReading.Temperature}} °C</td></tr>
<tr><th>Motion Detected</th><td>{{if .LastReading.Motion}}True{{else}}False{{end}}</td></tr>
<tr><th>Verdict</th><td class="{{if .LastAnalysis.Ghost}}ghost{{else}}clear{{end}}">{{if .LastAnalysis.Ghost}}GHOST FOUND{{else}}No Ghost Detected{{end}}</td></tr>
<tr><th>Probability</th><td>{{.LastAnalysis.Probability}}%</td></tr>
<tr><th>Activity</th><td>{{.LastAnalysis.ActivityLevel}}</td></tr>
{{if .LastAnalysis.GhostType}}<tr><th>Ghost Type</th><td>{{.LastAnalysis.GhostType}}</td></tr>{{end}}
<tr><th>Alarm</th><td>{{.AlarmLevel}}</td></tr>
</table>
{{else}}
<p class="unknown">No scans yet.</p>
{{end}}

<h2>Scan Counts</h2>
<table>
<tr><th>Scans</th><td>{{.Counts.Scans}}</td></tr>
<tr><th>Ghosts</th><td>{{.Counts.Ghosts}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
{{if .Config.Broker}}<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>{{end}}
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>EMF Threshold</th><td>&gt; {{.Config.EMFThreshold}}</td></tr>
<tr><th>Temp Threshold</th><td>&lt; {{.Config.TempThreshold}} °C</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a> · <a href="/api/history">History</a> · <a href="/api/report">Report</a> · <a href="/api/export.csv">CSV</a></p>

<script>
(function() {
  // Quick scan is a standalone chance display. It shares no logic or
  // state with the detector pipeline: one uniform draw per click.
  var chance = {{.Config.WebChance}};
  var btn = document.getElementById("quick-scan");
  var out = document.getElementById("quick-result");

  btn.addEventListener("click", function() {
    var r = Math.random();
    if (r > chance) {
      out.textContent = "👻 Ghost detected!";
      out.style.color = "red";
    } else {
      out.textContent = "✅ No ghost.";
      out.style.color = "green";
    }
  });
})();
</script>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
