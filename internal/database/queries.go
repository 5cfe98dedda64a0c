package database

import (
	"time"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// SaveSample records a throughput sample for a run.
func (db *DB) SaveSample(runID string, s models.Sample) error {
	query := `
        INSERT INTO samples (run_id, timestamp, hour, download_mbps, upload_mbps)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err := db.Exec(query,
		runID,
		s.Timestamp,
		s.Hour,
		s.DownloadMbps,
		s.UploadMbps,
	)
	return err
}

// SaveDisconnection records a completed outage for a run.
func (db *DB) SaveDisconnection(runID string, d models.Disconnection) error {
	query := `
        INSERT INTO disconnections (run_id, start_time, end_time, duration_seconds)
        VALUES (?, ?, ?, ?)
    `
	_, err := db.Exec(query,
		runID,
		d.Start,
		d.End,
		d.Duration.Seconds(),
	)
	return err
}

// GetSamples retrieves a run's samples in measurement order.
func (db *DB) GetSamples(runID string) ([]models.Sample, error) {
	query := `
        SELECT timestamp, hour, download_mbps, upload_mbps
        FROM samples
        WHERE run_id = ?
        ORDER BY timestamp
    `

	rows, err := db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var s models.Sample
		if err := rows.Scan(&s.Timestamp, &s.Hour, &s.DownloadMbps, &s.UploadMbps); err != nil {
			continue
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// GetDisconnections retrieves a run's outages in start order.
func (db *DB) GetDisconnections(runID string) ([]models.Disconnection, error) {
	query := `
        SELECT start_time, end_time, duration_seconds
        FROM disconnections
        WHERE run_id = ?
        ORDER BY start_time
    `

	rows, err := db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disconnections []models.Disconnection
	for rows.Next() {
		var d models.Disconnection
		var seconds float64
		if err := rows.Scan(&d.Start, &d.End, &seconds); err != nil {
			continue
		}
		d.Duration = time.Duration(seconds * float64(time.Second))
		disconnections = append(disconnections, d)
	}

	return disconnections, rows.Err()
}
