package probe

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUploadBytes = 2 << 20 // 2 MiB payload

// SpeedProbe measures throughput against an HTTP endpoint: a timed GET for
// download and a timed POST of a fixed payload for upload. Speed is bytes
// transferred over elapsed wall time, reported in Mbps.
type SpeedProbe struct {
	url         string
	client      *http.Client
	uploadBytes int
}

// NewSpeedProbe creates a probe against url with the given per-measurement
// timeout.
func NewSpeedProbe(url string, timeout time.Duration) *SpeedProbe {
	return &SpeedProbe{
		url:         url,
		client:      &http.Client{Timeout: timeout},
		uploadBytes: defaultUploadBytes,
	}
}

// Measure runs a download then an upload measurement. Either failing fails
// the whole measurement; the caller skips the sample and carries on.
func (p *SpeedProbe) Measure() (float64, float64, error) {
	download, err := p.measureDownload()
	if err != nil {
		return 0, 0, fmt.Errorf("download measurement: %w", err)
	}

	upload, err := p.measureUpload()
	if err != nil {
		return 0, 0, fmt.Errorf("upload measurement: %w", err)
	}

	return download, upload, nil
}

func (p *SpeedProbe) measureDownload() (float64, error) {
	start := time.Now()

	resp, err := p.client.Get(p.url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("empty response body")
	}

	return mbps(n, time.Since(start)), nil
}

func (p *SpeedProbe) measureUpload() (float64, error) {
	payload := bytes.Repeat([]byte{0x55}, p.uploadBytes)

	start := time.Now()

	resp, err := p.client.Post(p.url, "application/octet-stream", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return mbps(int64(len(payload)), time.Since(start)), nil
}

// mbps converts a byte count over a duration to megabits per second. Uses
// high-resolution seconds so sub-millisecond transfers don't collapse to 0.
func mbps(n int64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		secs = time.Nanosecond.Seconds()
	}
	return float64(n) * 8 / secs / 1_000_000
}
