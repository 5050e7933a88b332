package scan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sweeney/ghost-detector/internal/sensor"
)

// Fixed verdict strings. The console loop, TUI, and tests all rely on
// these literals.
const (
	VerdictGhost   = "👻 GHOST FOUND!"
	VerdictNoGhost = "✅ No Ghost Detected."
	Notification   = "🔊 BEEP! Ghost Presence Detected!"
)

// FormatStatus renders one reading and its verdict as console output.
// Field order is fixed: EMF, temperature, motion, verdict.
func FormatStatus(r sensor.Reading, ghost bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMF Level: %d\n", r.EMF)
	fmt.Fprintf(&b, "Temperature: %s °C\n", formatTemperature(r.Temperature))
	fmt.Fprintf(&b, "Motion Detected: %s\n", formatBool(r.Motion))
	if ghost {
		b.WriteString(VerdictGhost + "\n")
	} else {
		b.WriteString(VerdictNoGhost + "\n")
	}
	return b.String()
}

// formatTemperature rounds to 2 decimal places and drops trailing zeros,
// so 15.5 prints as "15.5" rather than "15.50".
func formatTemperature(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// formatBool capitalizes the value ("True"/"False") to match the
// documented console format.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
