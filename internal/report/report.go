package report

import (
	"time"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// Meta identifies the run a report describes.
type Meta struct {
	RunID       string
	StartedAt   time.Time
	GeneratedAt time.Time
	SampleCount int
}

// Build assembles the final report from the run's accumulated state. It is a
// pure transform: total downtime is the sum of all outage durations, zero
// when there were none, and empty inputs yield empty sections rather than
// errors.
func Build(meta Meta, extremes *models.SpeedExtremes, disconnections []models.Disconnection, hourly map[int]models.HourlyAverage, patterns *models.PatternSummary) models.Report {
	var totalDowntime time.Duration
	for _, d := range disconnections {
		totalDowntime += d.Duration
	}

	if disconnections == nil {
		disconnections = []models.Disconnection{}
	}
	if hourly == nil {
		hourly = map[int]models.HourlyAverage{}
	}

	return models.Report{
		RunID:          meta.RunID,
		StartedAt:      meta.StartedAt,
		GeneratedAt:    meta.GeneratedAt,
		SampleCount:    meta.SampleCount,
		Extremes:       extremes,
		Disconnections: disconnections,
		TotalDowntime:  totalDowntime,
		Patterns:       patterns,
		HourlyAverages: hourly,
	}
}
