package sensor

import (
	"errors"
	"testing"
)

func TestFakeReaderReturnsSamples(t *testing.T) {
	samples := []Reading{
		{EMF: 10, Temperature: 22.0, Motion: false},
		{EMF: 80, Temperature: 16.0, Motion: true},
	}
	f := NewFakeReader(samples)

	r1, err := f.Read()
	if err != nil {
		t.Fatalf("read 1: %v", err)
	}
	if r1 != samples[0] {
		t.Errorf("read 1: got %+v, want %+v", r1, samples[0])
	}

	r2, err := f.Read()
	if err != nil {
		t.Fatalf("read 2: %v", err)
	}
	if r2 != samples[1] {
		t.Errorf("read 2: got %+v, want %+v", r2, samples[1])
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([]Reading{{EMF: 42, Temperature: 20.0, Motion: true}})

	for i := 0; i < 5; i++ {
		r, err := f.Read()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if r.EMF != 42 {
			t.Errorf("read %d: got EMF %d, want 42", i, r.EMF)
		}
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)
	if _, err := f.Read(); err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeReaderReadError(t *testing.T) {
	wantErr := errors.New("sensor dead")
	f := NewFakeReader([]Reading{{EMF: 1}})
	f.ReadError = wantErr

	if _, err := f.Read(); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestFakeReaderCloseAndReset(t *testing.T) {
	f := NewFakeReader([]Reading{
		{EMF: 1},
		{EMF: 2},
	})

	f.Read()
	f.Read()
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed=true")
	}

	f.Reset()
	if f.Closed {
		t.Error("expected Closed=false after Reset")
	}
	r, _ := f.Read()
	if r.EMF != 1 {
		t.Errorf("after reset: got EMF %d, want 1", r.EMF)
	}
}
