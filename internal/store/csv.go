package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// exportLimit caps CSV exports to the most recent rows.
const exportLimit = 500

// ExportCSV writes the most recent scans to w in CSV form, oldest first.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) error {
	scans, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return err
	}

	// Recent returns newest first; export reads better chronologically.
	for i, j := 0, len(scans)-1; i < j; i, j = i+1, j-1 {
		scans[i], scans[j] = scans[j], scans[i]
	}

	cw := csv.NewWriter(w)
	header := []string{"timestamp", "emf", "temperature_c", "motion", "ghost", "probability", "ghost_type", "activity_level"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, sc := range scans {
		record := []string{
			sc.Timestamp.UTC().Format(time.RFC3339),
			strconv.Itoa(sc.EMF),
			strconv.FormatFloat(sc.Temperature, 'f', 2, 64),
			strconv.FormatBool(sc.Motion),
			strconv.FormatBool(sc.Ghost),
			strconv.FormatFloat(sc.Probability, 'f', 1, 64),
			sc.GhostType,
			sc.ActivityLevel,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
