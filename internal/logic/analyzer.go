package logic

import (
	"fmt"
	"math"

	"github.com/sweeney/ghost-detector/internal/sensor"
)

// Evidence weights per sensor. EMF is the strongest paranormal indicator,
// cold spots next, motion the weakest.
const (
	weightEMF         = 0.45
	weightTemperature = 0.35
	weightMotion      = 0.20
)

// classificationFloor is the probability above which a ghost type and
// evidence are reported.
const classificationFloor = 40.0

// Analyze scores one reading for paranormal activity. The probability is
// a weighted sum of normalized sensor contributions; temperature is
// inverted (colder = more paranormal). Deterministic: same reading, same
// analysis.
func Analyze(r Input, t Thresholds) Analysis {
	p := probability(r)

	a := Analysis{
		Ghost:         Detect(r, t),
		Probability:   p,
		ActivityLevel: activityLevel(p),
	}

	if p > classificationFloor {
		a.GhostType = classify(r, t)
		a.Evidence = gatherEvidence(r, t)
		a.Recommendations = recommend(p)
	}

	return a
}

func probability(r Input) float64 {
	emf := float64(r.EMF) / float64(sensor.EMFMax)

	temp := (sensor.TempMax - r.Temperature) / (sensor.TempMax - sensor.TempMin)
	temp = clamp01(temp)

	motion := 0.0
	if r.Motion {
		motion = 1.0
	}

	score := emf*weightEMF + temp*weightTemperature + motion*weightMotion
	return math.Round(clamp01(score)*1000) / 10
}

func activityLevel(p float64) Level {
	switch {
	case p < 30:
		return LevelLow
	case p < 60:
		return LevelModerate
	case p < 80:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// classify maps the evidence profile to a ghost type. The order matters:
// stronger combined evidence wins.
func classify(r Input, t Thresholds) string {
	cold := r.Temperature < t.Temperature
	highEMF := r.EMF > t.EMF

	switch {
	case cold && highEMF:
		return "Wraith"
	case highEMF && r.Motion:
		return "Poltergeist"
	case cold:
		return "Phantom"
	case r.Motion:
		return "Apparition"
	default:
		return "Orb"
	}
}

func gatherEvidence(r Input, t Thresholds) []string {
	var evidence []string

	if r.EMF > 50 {
		evidence = append(evidence, fmt.Sprintf("EMF Spike: %d mG", r.EMF))
	}
	if r.Temperature < t.Temperature {
		evidence = append(evidence, fmt.Sprintf("Cold Spot: %.1f °C", r.Temperature))
	}
	if r.Motion {
		evidence = append(evidence, "Motion Detected")
	}

	return evidence
}

// recommend returns investigation advice for a probability above the
// classification floor. Bands are strict, matching the alarm boundaries
// at 60 and 80.
func recommend(p float64) []string {
	switch {
	case p > 80:
		return []string{
			"⚠️ IMMEDIATE EVACUATION RECOMMENDED",
			"Contact paranormal investigation team",
			"Set up additional recording equipment",
		}
	case p > 60:
		return []string{
			"Maintain observation - activity increasing",
			"Deploy backup sensors",
			"Document all readings",
		}
	default:
		return []string{
			"Continue monitoring",
			"Check sensor calibration",
			"Note environmental conditions",
		}
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
