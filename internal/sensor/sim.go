package sensor

import "math/rand"

// SimReader produces simulated readings from an injected random source.
// A fixed seed gives a reproducible scan sequence.
type SimReader struct {
	rng *rand.Rand
}

// NewSimReader creates a simulated sensor pack backed by rng.
func NewSimReader(rng *rand.Rand) *SimReader {
	return &SimReader{rng: rng}
}

// Read draws one independent value per sensor.
func (s *SimReader) Read() (Reading, error) {
	return Reading{
		EMF:         s.readEMF(),
		Temperature: s.readTemperature(),
		Motion:      s.readMotion(),
	}, nil
}

func (s *SimReader) readEMF() int {
	return s.rng.Intn(EMFMax + 1)
}

func (s *SimReader) readTemperature() float64 {
	return TempMin + s.rng.Float64()*(TempMax-TempMin)
}

func (s *SimReader) readMotion() bool {
	return s.rng.Intn(2) == 1
}

// Close is a no-op for simulated sensors.
func (s *SimReader) Close() error {
	return nil
}
