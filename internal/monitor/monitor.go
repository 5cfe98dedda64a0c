package monitor

import (
	"log"
	"time"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/config"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/report"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/stats"
)

// Monitor owns all state of one monitoring run: the sample log, the
// extremes, the hourly buckets and the disconnection log. Everything is
// touched from the single Run flow only, so no locking is needed.
type Monitor struct {
	cfg          config.Config
	connectivity models.ConnectivityProbe
	speed        models.SpeedProbe
	recorder     models.Recorder
	clock        models.Clock
	runID        string

	samples        []models.Sample
	disconnections []models.Disconnection
	extremes       *stats.ExtremeTracker
	hourly         *stats.HourlyAggregator
	disconnect     *DisconnectionTracker
	currentHour    int
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock replaces the wall clock, used by tests to drive the loop
// deterministically.
func WithClock(c models.Clock) Option {
	return func(m *Monitor) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithRecorder attaches a recording sink for samples and disconnections.
func WithRecorder(r models.Recorder) Option {
	return func(m *Monitor) {
		m.recorder = r
	}
}

// New creates a Monitor for one run identified by runID.
func New(cfg config.Config, runID string, connectivity models.ConnectivityProbe, speed models.SpeedProbe, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:          cfg,
		connectivity: connectivity,
		speed:        speed,
		clock:        systemClock{},
		runID:        runID,
		extremes:     stats.NewExtremeTracker(),
		hourly:       stats.NewHourlyAggregator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.disconnect = NewDisconnectionTracker(connectivity, cfg.ReconnectInterval, m.clock)
	return m
}

// Run polls until the configured duration has elapsed, then finalizes the
// last hourly bucket and returns the run's report. A long measurement or a
// long outage can push the run past its nominal duration; the overrun is
// accepted, not truncated.
func (m *Monitor) Run() models.Report {
	start := m.clock.Now()
	end := start.Add(m.cfg.Duration)
	m.currentHour = start.Hour()

	log.Printf("Starting monitoring run %s for %v", m.runID, m.cfg.Duration)

	for m.clock.Now().Before(end) {
		now := m.clock.Now()

		// Commit the previous hour's bucket when the wall-clock hour rolls over.
		if now.Hour() != m.currentHour {
			m.hourly.Finalize(m.currentHour)
			m.currentHour = now.Hour()
		}

		if !m.connectivity.IsReachable() {
			m.trackDisconnection(now)
			// No speed sample this cycle; go straight to the next iteration.
			continue
		}

		download, upload, err := m.speed.Measure()
		if err != nil {
			// A failed measurement while reachable is not a disconnection.
			log.Printf("Speed measurement failed: %v", err)
		} else {
			m.recordSample(models.Sample{
				Timestamp:    now,
				Hour:         now.Hour(),
				DownloadMbps: download,
				UploadMbps:   upload,
			})
		}

		m.clock.Sleep(m.cfg.PollInterval)
	}

	// The final partial hour still counts.
	m.hourly.Finalize(m.currentHour)

	log.Printf("Monitoring run %s complete: %d samples, %d disconnections",
		m.runID, len(m.samples), len(m.disconnections))

	return report.Build(report.Meta{
		RunID:       m.runID,
		StartedAt:   start,
		GeneratedAt: m.clock.Now(),
		SampleCount: len(m.samples),
	}, m.extremes.Extremes(), m.disconnections, m.hourly.Averages(), stats.Analyze(m.samples))
}

func (m *Monitor) trackDisconnection(lostAt time.Time) {
	log.Printf("Connection lost at %s", lostAt.Format("2006-01-02 15:04:05"))

	d := m.disconnect.AwaitReconnection(lostAt)
	m.disconnections = append(m.disconnections, d)

	log.Printf("Connection restored after %v", d.Duration)

	if m.recorder != nil {
		if err := m.recorder.SaveDisconnection(m.runID, d); err != nil {
			log.Printf("Failed to record disconnection: %v", err)
		}
	}
}

func (m *Monitor) recordSample(s models.Sample) {
	m.samples = append(m.samples, s)
	m.extremes.Update(s)
	m.hourly.Accumulate(s)

	log.Printf("Speed test: Download=%.2f Mbps, Upload=%.2f Mbps", s.DownloadMbps, s.UploadMbps)

	if m.recorder != nil {
		if err := m.recorder.SaveSample(m.runID, s); err != nil {
			log.Printf("Failed to record sample: %v", err)
		}
	}
}
