package stats

import "github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"

type hourlyBucket struct {
	downloadSum float64
	uploadSum   float64
	count       int
}

// HourlyAggregator buckets samples by hour of day (0-23) and commits a
// bucket's averages when the hour is finalized.
//
// Buckets carry no calendar-day dimension: a run spanning the same hour of
// day twice merges nothing at accumulation time, but the second Finalize for
// that hour overwrites the first committed entry.
type HourlyAggregator struct {
	inProgress map[int]*hourlyBucket
	averages   map[int]models.HourlyAverage
}

// NewHourlyAggregator creates an empty aggregator.
func NewHourlyAggregator() *HourlyAggregator {
	return &HourlyAggregator{
		inProgress: make(map[int]*hourlyBucket),
		averages:   make(map[int]models.HourlyAverage),
	}
}

// Accumulate adds a sample to the in-progress bucket for its hour.
func (a *HourlyAggregator) Accumulate(s models.Sample) {
	b := a.inProgress[s.Hour]
	if b == nil {
		b = &hourlyBucket{}
		a.inProgress[s.Hour] = b
	}
	b.downloadSum += s.DownloadMbps
	b.uploadSum += s.UploadMbps
	b.count++
}

// Finalize commits the in-progress bucket for hour and clears it. Finalizing
// an hour with no accumulated samples is a no-op; no entry is written.
func (a *HourlyAggregator) Finalize(hour int) {
	b := a.inProgress[hour]
	if b == nil || b.count == 0 {
		return
	}
	a.averages[hour] = models.HourlyAverage{
		DownloadMbps: b.downloadSum / float64(b.count),
		UploadMbps:   b.uploadSum / float64(b.count),
		Samples:      b.count,
	}
	delete(a.inProgress, hour)
}

// Averages returns the committed hourly averages keyed by hour of day.
func (a *HourlyAggregator) Averages() map[int]models.HourlyAverage {
	out := make(map[int]models.HourlyAverage, len(a.averages))
	for h, avg := range a.averages {
		out[h] = avg
	}
	return out
}
