package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"
)

// Report aggregates scan activity over a window.
type Report struct {
	Period         string  `json:"period"`
	TotalScans     int     `json:"total_scans"`
	TotalGhosts    int     `json:"total_ghosts"`
	AvgProbability float64 `json:"avg_probability"`
	MaxProbability float64 `json:"max_probability"`
	MinProbability float64 `json:"min_probability"`
	MostActiveHour string  `json:"most_active_hour"`
	Generated      string  `json:"generated"`
}

// ErrNoData is returned by GenerateReport when the window holds no scans.
var ErrNoData = errors.New("no data available for this period")

// GenerateReport summarizes scans taken in the last window hours before now.
func (s *Store) GenerateReport(ctx context.Context, window time.Duration, now time.Time) (Report, error) {
	if s == nil || s.sqlDB == nil {
		return Report{}, fmt.Errorf("storage is not configured")
	}

	cutoff := now.Add(-window).Unix()

	var total, ghosts int
	var avg, max, min sql.NullFloat64
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(ghost), 0), AVG(probability), MAX(probability), MIN(probability)
		 FROM scans
		 WHERE scanned_at > ?`,
		cutoff,
	)
	if err := row.Scan(&total, &ghosts, &avg, &max, &min); err != nil {
		return Report{}, fmt.Errorf("aggregate scans: %w", err)
	}

	if total == 0 {
		return Report{}, ErrNoData
	}

	mostActive, err := s.mostActiveHour(ctx, cutoff)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Period:         fmt.Sprintf("Last %d hours", int(window.Hours())),
		TotalScans:     total,
		TotalGhosts:    ghosts,
		AvgProbability: round1(avg.Float64),
		MaxProbability: max.Float64,
		MinProbability: min.Float64,
		MostActiveHour: mostActive,
		Generated:      now.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Store) mostActiveHour(ctx context.Context, cutoff int64) (string, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT strftime('%H', scanned_at, 'unixepoch'), COUNT(*) AS n
		 FROM scans
		 WHERE scanned_at > ?
		 GROUP BY 1
		 ORDER BY n DESC
		 LIMIT 1`,
		cutoff,
	)

	var hour string
	var n int
	if err := row.Scan(&hour, &n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "Unknown", nil
		}
		return "", fmt.Errorf("most active hour: %w", err)
	}
	return fmt.Sprintf("%s:00 - %s:59 (%d scans)", hour, hour, n), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
