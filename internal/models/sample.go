package models

import "time"

// Sample is one successful throughput measurement tagged with its
// wall-clock hour. Samples are immutable once created.
type Sample struct {
	Timestamp    time.Time `json:"timestamp"`
	Hour         int       `json:"hour"` // 0-23
	DownloadMbps float64   `json:"download_mbps"`
	UploadMbps   float64   `json:"upload_mbps"`
}

// Disconnection is one connectivity outage. It is created whole when
// connectivity is restored, so End is always known and End >= Start.
type Disconnection struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// NewDisconnection builds a Disconnection covering [start, end].
func NewDisconnection(start, end time.Time) Disconnection {
	return Disconnection{
		Start:    start,
		End:      end,
		Duration: end.Sub(start),
	}
}
