package stats

import (
	"math"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// ExtremeTracker maintains the running max/min of download and upload speed.
// Min extremes start at +Inf and max extremes at 0, so the first sample seeds
// all four. Ties keep the first occurrence.
type ExtremeTracker struct {
	extremes models.SpeedExtremes
	observed bool
}

// NewExtremeTracker creates a tracker in its no-data-yet state.
func NewExtremeTracker() *ExtremeTracker {
	return &ExtremeTracker{
		extremes: models.SpeedExtremes{
			MinDownload: models.Extreme{SpeedMbps: math.Inf(1)},
			MinUpload:   models.Extreme{SpeedMbps: math.Inf(1)},
		},
	}
}

// Update replaces any extreme the sample beats.
func (t *ExtremeTracker) Update(s models.Sample) {
	t.observed = true

	if s.DownloadMbps > t.extremes.MaxDownload.SpeedMbps {
		t.extremes.MaxDownload = models.Extreme{SpeedMbps: s.DownloadMbps, Timestamp: s.Timestamp}
	}
	if s.DownloadMbps < t.extremes.MinDownload.SpeedMbps {
		t.extremes.MinDownload = models.Extreme{SpeedMbps: s.DownloadMbps, Timestamp: s.Timestamp}
	}
	if s.UploadMbps > t.extremes.MaxUpload.SpeedMbps {
		t.extremes.MaxUpload = models.Extreme{SpeedMbps: s.UploadMbps, Timestamp: s.Timestamp}
	}
	if s.UploadMbps < t.extremes.MinUpload.SpeedMbps {
		t.extremes.MinUpload = models.Extreme{SpeedMbps: s.UploadMbps, Timestamp: s.Timestamp}
	}
}

// Extremes returns the tracked extremes, or nil if no sample has been
// observed. The internal sentinels never leave the tracker.
func (t *ExtremeTracker) Extremes() *models.SpeedExtremes {
	if !t.observed {
		return nil
	}
	e := t.extremes
	return &e
}
