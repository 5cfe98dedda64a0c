package models

import "time"

// ConnectivityProbe answers whether the network is reachable right now.
type ConnectivityProbe interface {
	IsReachable() bool
}

// SpeedProbe measures current throughput in both directions.
type SpeedProbe interface {
	Measure() (downloadMbps, uploadMbps float64, err error)
}

// Recorder persists measurements as they happen. Recorder errors must never
// fail the monitoring run; callers log them and continue.
type Recorder interface {
	SaveSample(runID string, s Sample) error
	SaveDisconnection(runID string, d Disconnection) error
	Close() error
}

// Clock abstracts wall-clock access so the monitor loop can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
