package stats

import (
	"math"
	"sort"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// Analyze derives peak/low hours and stability scores from the full sample
// log. It returns nil when the log is empty.
//
// Per-hour standard deviation is the population form (divide by n), so a
// single-sample hour scores 0, not undefined. Argmax/argmin ties go to the
// smallest hour of day.
func Analyze(samples []models.Sample) *models.PatternSummary {
	if len(samples) == 0 {
		return nil
	}

	byHour := make(map[int][]models.Sample)
	for _, s := range samples {
		byHour[s.Hour] = append(byHour[s.Hour], s)
	}

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	var (
		peak, low        models.DirectionHours
		peakDown, peakUp = math.Inf(-1), math.Inf(-1)
		lowDown, lowUp   = math.Inf(1), math.Inf(1)
		downStds, upStds []float64
	)

	for _, h := range hours {
		downMean, downStd := meanStddev(byHour[h], func(s models.Sample) float64 { return s.DownloadMbps })
		upMean, upStd := meanStddev(byHour[h], func(s models.Sample) float64 { return s.UploadMbps })

		if downMean > peakDown {
			peakDown, peak.Download = downMean, h
		}
		if downMean < lowDown {
			lowDown, low.Download = downMean, h
		}
		if upMean > peakUp {
			peakUp, peak.Upload = upMean, h
		}
		if upMean < lowUp {
			lowUp, low.Upload = upMean, h
		}

		downStds = append(downStds, downStd)
		upStds = append(upStds, upStd)
	}

	return &models.PatternSummary{
		PeakHours: peak,
		LowHours:  low,
		Stability: models.Stability{
			Download: mean(downStds),
			Upload:   mean(upStds),
		},
	}
}

func meanStddev(samples []models.Sample, value func(models.Sample) float64) (float64, float64) {
	m := 0.0
	for _, s := range samples {
		m += value(s)
	}
	m /= float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		d := value(s) - m
		variance += d * d
	}
	variance /= float64(len(samples))

	return m, math.Sqrt(variance)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
