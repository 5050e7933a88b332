// Package sensor provides paranormal sensor readings with hardware abstraction.
// The simulated implementation draws pseudo-random values from an injected
// random source. An optional Linux implementation reads motion from a real
// PIR line; the fake implementation allows testing without either.
package sensor

// Reading is one sample of all three sensors.
type Reading struct {
	EMF         int     // milligauss, [0,100]
	Temperature float64 // °C, [15.0,35.0]
	Motion      bool
}

// Sensor value ranges. Guaranteed by the generators, not validated downstream.
const (
	EMFMax  = 100
	TempMin = 15.0
	TempMax = 35.0
)

// Reader reads one sensor sample per scan.
type Reader interface {
	// Read returns the current EMF, temperature, and motion values.
	Read() (Reading, error)

	// Close releases any underlying resources.
	Close() error
}

// DefaultMotionPin is the BCM pin for an attached PIR module.
const DefaultMotionPin = 17
