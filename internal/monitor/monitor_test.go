package monitor

import (
	"errors"
	"testing"
	"time"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/config"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// fakeClock advances only when the loop sleeps, so tests run instantly and
// deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// scriptedConnectivity returns the scripted answers in order, then stays
// reachable.
type scriptedConnectivity struct {
	script []bool
	calls  int
}

func (p *scriptedConnectivity) IsReachable() bool {
	if p.calls < len(p.script) {
		r := p.script[p.calls]
		p.calls++
		return r
	}
	p.calls++
	return true
}

type speedResult struct {
	download float64
	upload   float64
	err      error
}

// scriptedSpeed returns the scripted measurements in order, then errors.
type scriptedSpeed struct {
	script []speedResult
	calls  int
}

func (p *scriptedSpeed) Measure() (float64, float64, error) {
	if p.calls < len(p.script) {
		r := p.script[p.calls]
		p.calls++
		return r.download, r.upload, r.err
	}
	p.calls++
	return 0, 0, errors.New("no measurement scripted")
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Duration = 3 * time.Minute
	cfg.PollInterval = time.Minute
	cfg.ReconnectInterval = 5 * time.Second
	return cfg
}

func TestRunCollectsSamplesAcrossHourBoundary(t *testing.T) {
	// Three cycles: two in hour 10, one in hour 11 after the rollover.
	clock := &fakeClock{now: time.Date(2024, 3, 14, 10, 58, 0, 0, time.UTC)}
	speed := &scriptedSpeed{script: []speedResult{
		{download: 50, upload: 10},
		{download: 80, upload: 15},
		{download: 20, upload: 5},
	}}

	mon := New(testConfig(), "run-1", &scriptedConnectivity{}, speed, WithClock(clock))
	rep := mon.Run()

	if rep.SampleCount != 3 {
		t.Fatalf("sample count = %d, want 3", rep.SampleCount)
	}

	if rep.Extremes == nil {
		t.Fatal("expected extremes in report")
	}
	if rep.Extremes.MaxDownload.SpeedMbps != 80 || rep.Extremes.MaxDownload.Timestamp.Hour() != 10 {
		t.Errorf("max download = %.0f@%d, want 80@10",
			rep.Extremes.MaxDownload.SpeedMbps, rep.Extremes.MaxDownload.Timestamp.Hour())
	}
	if rep.Extremes.MinDownload.SpeedMbps != 20 || rep.Extremes.MinDownload.Timestamp.Hour() != 11 {
		t.Errorf("min download = %.0f@%d, want 20@11",
			rep.Extremes.MinDownload.SpeedMbps, rep.Extremes.MinDownload.Timestamp.Hour())
	}

	ten, ok := rep.HourlyAverages[10]
	if !ok {
		t.Fatal("expected an hourly average for hour 10")
	}
	if ten.DownloadMbps != 65 || ten.UploadMbps != 12.5 || ten.Samples != 2 {
		t.Errorf("hour 10 = {%.1f %.1f %d}, want {65.0 12.5 2}", ten.DownloadMbps, ten.UploadMbps, ten.Samples)
	}

	// The final partial hour is finalized at termination.
	eleven, ok := rep.HourlyAverages[11]
	if !ok {
		t.Fatal("expected an hourly average for the final partial hour")
	}
	if eleven.DownloadMbps != 20 || eleven.Samples != 1 {
		t.Errorf("hour 11 = {%.1f %d}, want {20.0 1}", eleven.DownloadMbps, eleven.Samples)
	}

	if rep.Patterns == nil {
		t.Fatal("expected a pattern summary")
	}
	if rep.Patterns.PeakHours.Download != 10 || rep.Patterns.LowHours.Download != 11 {
		t.Errorf("download peak/low = %d/%d, want 10/11",
			rep.Patterns.PeakHours.Download, rep.Patterns.LowHours.Download)
	}

	if len(rep.Disconnections) != 0 || rep.TotalDowntime != 0 {
		t.Errorf("expected no disconnections, got %d with downtime %v",
			len(rep.Disconnections), rep.TotalDowntime)
	}
}

func TestRunTracksDisconnection(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)}
	lossAt := clock.now

	cfg := testConfig()
	cfg.Duration = time.Minute
	cfg.ReconnectInterval = 6 * time.Second

	// The loop's check fails once, then the reconnection wait sees seven more
	// failures before connectivity returns: 7 sleeps of 6s, a 42s outage.
	connectivity := &scriptedConnectivity{script: []bool{
		false,
		false, false, false, false, false, false, false,
		true,
	}}

	mon := New(cfg, "run-2", connectivity, &scriptedSpeed{}, WithClock(clock))
	rep := mon.Run()

	if len(rep.Disconnections) != 1 {
		t.Fatalf("disconnection count = %d, want 1", len(rep.Disconnections))
	}

	d := rep.Disconnections[0]
	if !d.Start.Equal(lossAt) {
		t.Errorf("disconnection start = %v, want %v", d.Start, lossAt)
	}
	if d.Duration != 42*time.Second {
		t.Errorf("disconnection duration = %v, want 42s", d.Duration)
	}
	if !d.End.Equal(lossAt.Add(42 * time.Second)) {
		t.Errorf("disconnection end = %v, want %v", d.End, lossAt.Add(42*time.Second))
	}
	if rep.TotalDowntime != 42*time.Second {
		t.Errorf("total downtime = %v, want 42s", rep.TotalDowntime)
	}
}

func TestRunAllMeasurementsFail(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)}

	// Connectivity is fine throughout; every speed measurement errors.
	mon := New(testConfig(), "run-3", &scriptedConnectivity{}, &scriptedSpeed{}, WithClock(clock))
	rep := mon.Run()

	if rep.SampleCount != 0 {
		t.Errorf("sample count = %d, want 0", rep.SampleCount)
	}
	if rep.Extremes != nil {
		t.Errorf("expected no extremes, got %+v", rep.Extremes)
	}
	if rep.Patterns != nil {
		t.Errorf("expected no patterns, got %+v", rep.Patterns)
	}
	if len(rep.HourlyAverages) != 0 {
		t.Errorf("expected empty hourly averages, got %v", rep.HourlyAverages)
	}
	if len(rep.Disconnections) != 0 {
		t.Errorf("expected no disconnections, got %d", len(rep.Disconnections))
	}
	if rep.TotalDowntime != 0 {
		t.Errorf("total downtime = %v, want 0", rep.TotalDowntime)
	}
}

func TestRunMeasurementErrorIsNotDisconnection(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)}
	cfg := testConfig()
	cfg.Duration = 2 * time.Minute

	speed := &scriptedSpeed{script: []speedResult{
		{err: errors.New("measurement server unavailable")},
		{download: 30, upload: 6},
	}}

	mon := New(cfg, "run-4", &scriptedConnectivity{}, speed, WithClock(clock))
	rep := mon.Run()

	if rep.SampleCount != 1 {
		t.Errorf("sample count = %d, want 1", rep.SampleCount)
	}
	if len(rep.Disconnections) != 0 {
		t.Errorf("probe failure was recorded as a disconnection: %v", rep.Disconnections)
	}
}

type recordingSink struct {
	samples        []models.Sample
	disconnections []models.Disconnection
	runIDs         []string
}

func (r *recordingSink) SaveSample(runID string, s models.Sample) error {
	r.runIDs = append(r.runIDs, runID)
	r.samples = append(r.samples, s)
	return nil
}

func (r *recordingSink) SaveDisconnection(runID string, d models.Disconnection) error {
	r.disconnections = append(r.disconnections, d)
	return nil
}

func (r *recordingSink) Close() error { return nil }

func TestRunFeedsRecorder(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)}
	cfg := testConfig()
	cfg.Duration = 2 * time.Minute

	speed := &scriptedSpeed{script: []speedResult{
		{download: 40, upload: 8},
		{download: 60, upload: 12},
	}}
	sink := &recordingSink{}

	mon := New(cfg, "run-5", &scriptedConnectivity{}, speed, WithClock(clock), WithRecorder(sink))
	mon.Run()

	if len(sink.samples) != 2 {
		t.Fatalf("recorded samples = %d, want 2", len(sink.samples))
	}
	for _, id := range sink.runIDs {
		if id != "run-5" {
			t.Errorf("recorded run ID = %q, want run-5", id)
		}
	}
}
