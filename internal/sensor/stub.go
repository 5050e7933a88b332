//go:build !linux

package sensor

import (
	"errors"
	"math/rand"
)

// MotionReader is not available on non-Linux platforms.
type MotionReader struct{}

// NewMotionReader returns an error on non-Linux platforms.
func NewMotionReader(pin int, rng *rand.Rand) (*MotionReader, error) {
	return nil, errors.New("sensor: gpio motion not supported on this platform (requires Linux)")
}

// Read is not implemented on non-Linux platforms.
func (r *MotionReader) Read() (Reading, error) {
	return Reading{}, errors.New("sensor: gpio motion not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *MotionReader) Close() error {
	return nil
}
