package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestExportCSV(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

	if err := s.LogScan(ctx, resultAt(base, 80, 15.5, true)); err != nil {
		t.Fatal(err)
	}
	if err := s.LogScan(ctx, resultAt(base.Add(time.Minute), 10, 30.0, false)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.ExportCSV(ctx, &buf); err != nil {
		t.Fatalf("export csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := strings.Join(records[0], ",")
	want := "timestamp,emf,temperature_c,motion,ghost,probability,ghost_type,activity_level"
	if header != want {
		t.Errorf("header: got %q, want %q", header, want)
	}

	// Oldest first.
	if records[1][0] != "2026-03-01T22:00:00Z" {
		t.Errorf("row 1 timestamp: got %q", records[1][0])
	}
	if records[1][1] != "80" {
		t.Errorf("row 1 emf: got %q, want 80", records[1][1])
	}
	if records[1][2] != "15.50" {
		t.Errorf("row 1 temperature: got %q, want 15.50", records[1][2])
	}
	if records[1][3] != "true" || records[1][4] != "true" {
		t.Errorf("row 1 motion/ghost: got %q/%q", records[1][3], records[1][4])
	}
	if records[2][4] != "false" {
		t.Errorf("row 2 ghost: got %q, want false", records[2][4])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	s := openTestStore(t)

	var buf bytes.Buffer
	if err := s.ExportCSV(context.Background(), &buf); err != nil {
		t.Fatalf("export csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}
