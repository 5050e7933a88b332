package logic

import (
	"math"
	"testing"

	"github.com/sweeney/ghost-detector/internal/sensor"
)

func TestDetectRule(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want bool
	}{
		{"all clauses met", Input{EMF: 71, Temperature: 19.99, Motion: true}, true},
		{"strong signal", Input{EMF: 100, Temperature: 15.0, Motion: true}, true},
		{"emf at boundary", Input{EMF: 70, Temperature: 19.99, Motion: true}, false},
		{"temp at boundary", Input{EMF: 71, Temperature: 20.0, Motion: true}, false},
		{"no motion", Input{EMF: 71, Temperature: 19.99, Motion: false}, false},
		{"nothing met", Input{EMF: 10, Temperature: 30.0, Motion: false}, false},
		{"emf just below", Input{EMF: 69, Temperature: 15.0, Motion: true}, false},
		{"temp just above", Input{EMF: 100, Temperature: 20.01, Motion: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.in, DefaultThresholds)
			if got != tt.want {
				t.Errorf("Detect(%+v): got %t, want %t", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectLowEMFAlwaysFalse(t *testing.T) {
	// For all emf <= 70, result is false regardless of the other inputs.
	for emf := 0; emf <= 70; emf++ {
		for _, temp := range []float64{15.0, 19.99, 20.0, 35.0} {
			for _, motion := range []bool{true, false} {
				in := Input{EMF: emf, Temperature: temp, Motion: motion}
				if Detect(in, DefaultThresholds) {
					t.Fatalf("Detect(%+v): got true, want false", in)
				}
			}
		}
	}
}

func TestDetectWarmAlwaysFalse(t *testing.T) {
	// For all temperature >= 20.0, result is false regardless of the other inputs.
	for temp := 20.0; temp <= 35.0; temp += 0.25 {
		for _, emf := range []int{0, 70, 71, 100} {
			for _, motion := range []bool{true, false} {
				in := Input{EMF: emf, Temperature: temp, Motion: motion}
				if Detect(in, DefaultThresholds) {
					t.Fatalf("Detect(%+v): got true, want false", in)
				}
			}
		}
	}
}

func TestDetectNoMotionAlwaysFalse(t *testing.T) {
	for emf := 0; emf <= 100; emf += 5 {
		for temp := 15.0; temp <= 35.0; temp += 1.0 {
			in := Input{EMF: emf, Temperature: temp, Motion: false}
			if Detect(in, DefaultThresholds) {
				t.Fatalf("Detect(%+v): got true, want false", in)
			}
		}
	}
}

func TestDetectNaNTemperature(t *testing.T) {
	in := Input{EMF: 100, Temperature: math.NaN(), Motion: true}
	if Detect(in, DefaultThresholds) {
		t.Error("Detect with NaN temperature: got true, want false")
	}
}

func TestDetectCustomThresholds(t *testing.T) {
	th := Thresholds{EMF: 50, Temperature: 25.0}

	if !Detect(Input{EMF: 51, Temperature: 24.9, Motion: true}, th) {
		t.Error("expected ghost with custom thresholds")
	}
	// Boundaries stay exclusive under custom thresholds too.
	if Detect(Input{EMF: 50, Temperature: 24.9, Motion: true}, th) {
		t.Error("EMF boundary should be exclusive")
	}
	if Detect(Input{EMF: 51, Temperature: 25.0, Motion: true}, th) {
		t.Error("temperature boundary should be exclusive")
	}
}

func TestDefaultThresholds(t *testing.T) {
	if DefaultThresholds.EMF != 70 {
		t.Errorf("EMF threshold: got %d, want 70", DefaultThresholds.EMF)
	}
	if DefaultThresholds.Temperature != 20.0 {
		t.Errorf("temperature threshold: got %v, want 20.0", DefaultThresholds.Temperature)
	}
}

func TestInputAliasesSensorReading(t *testing.T) {
	// Input must stay interchangeable with sensor.Reading.
	var in Input = sensor.Reading{EMF: 80, Temperature: 15.5, Motion: true}
	if !Detect(in, DefaultThresholds) {
		t.Error("expected ghost for (80, 15.5, true)")
	}
}
