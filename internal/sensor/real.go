//go:build linux

package sensor

import (
	"fmt"
	"math/rand"

	"github.com/warthog618/go-gpiocdev"
)

// MotionReader reads motion from a PIR module on a GPIO line while keeping
// EMF and temperature simulated. Useful when the detector rig has a real
// motion sensor but no EMF probe.
type MotionReader struct {
	sim  *SimReader
	chip *gpiocdev.Chip
	pin  *gpiocdev.Line
}

// NewMotionReader opens the given BCM pin as a motion input.
func NewMotionReader(pin int, rng *rand.Rand) (*MotionReader, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request motion pin %d: %w", pin, err)
	}

	return &MotionReader{
		sim:  NewSimReader(rng),
		chip: chip,
		pin:  line,
	}, nil
}

// Read returns simulated EMF and temperature with hardware motion.
// A PIR module drives its output high while motion is present.
func (r *MotionReader) Read() (Reading, error) {
	raw, err := r.pin.Value()
	if err != nil {
		return Reading{}, fmt.Errorf("read motion pin: %w", err)
	}

	return Reading{
		EMF:         r.sim.readEMF(),
		Temperature: r.sim.readTemperature(),
		Motion:      raw == 1,
	}, nil
}

// Close releases GPIO resources.
func (r *MotionReader) Close() error {
	var errs []error

	if r.pin != nil {
		if err := r.pin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close motion pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
