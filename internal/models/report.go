package models

import "time"

// Extreme is the best or worst observed value of one metric, with when
// it occurred.
type Extreme struct {
	SpeedMbps float64   `json:"speed_mbps"`
	Timestamp time.Time `json:"timestamp"`
}

// SpeedExtremes holds the four extremes tracked over a run.
type SpeedExtremes struct {
	MaxDownload Extreme `json:"max_download"`
	MinDownload Extreme `json:"min_download"`
	MaxUpload   Extreme `json:"max_upload"`
	MinUpload   Extreme `json:"min_upload"`
}

// HourlyAverage summarizes the samples observed during one hour of day.
type HourlyAverage struct {
	DownloadMbps float64 `json:"download_mbps"`
	UploadMbps   float64 `json:"upload_mbps"`
	Samples      int     `json:"samples"`
}

// DirectionHours names the hour of day a direction peaked and bottomed out.
type DirectionHours struct {
	Download int `json:"download"`
	Upload   int `json:"upload"`
}

// Stability is the average intra-hour standard deviation per direction.
// Lower means more consistent.
type Stability struct {
	Download float64 `json:"download"`
	Upload   float64 `json:"upload"`
}

// PatternSummary is derived from the full sample log on demand.
type PatternSummary struct {
	PeakHours DirectionHours `json:"peak_hours"`
	LowHours  DirectionHours `json:"low_hours"`
	Stability Stability      `json:"stability"`
}

// Report is the snapshot emitted once at the end of a monitoring run.
// Extremes and Patterns are nil when the run collected no samples.
type Report struct {
	RunID          string                `json:"run_id"`
	StartedAt      time.Time             `json:"started_at"`
	GeneratedAt    time.Time             `json:"generated_at"`
	SampleCount    int                   `json:"sample_count"`
	Extremes       *SpeedExtremes        `json:"extremes,omitempty"`
	Disconnections []Disconnection       `json:"disconnections"`
	TotalDowntime  time.Duration         `json:"total_downtime"`
	Patterns       *PatternSummary       `json:"patterns,omitempty"`
	HourlyAverages map[int]HourlyAverage `json:"hourly_averages"`
}
