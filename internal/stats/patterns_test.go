package stats

import (
	"math"
	"testing"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

func TestAnalyzeEmptyLog(t *testing.T) {
	if got := Analyze(nil); got != nil {
		t.Fatalf("expected nil summary for empty log, got %+v", got)
	}
	if got := Analyze([]models.Sample{}); got != nil {
		t.Fatalf("expected nil summary for empty slice, got %+v", got)
	}
}

func TestAnalyzeSingleSample(t *testing.T) {
	summary := Analyze([]models.Sample{sampleAt(14, 42, 7)})
	if summary == nil {
		t.Fatal("expected a summary for a single sample")
	}

	if summary.PeakHours.Download != 14 || summary.LowHours.Download != 14 {
		t.Errorf("download peak/low = %d/%d, want 14/14", summary.PeakHours.Download, summary.LowHours.Download)
	}
	if summary.PeakHours.Upload != 14 || summary.LowHours.Upload != 14 {
		t.Errorf("upload peak/low = %d/%d, want 14/14", summary.PeakHours.Upload, summary.LowHours.Upload)
	}
	if summary.Stability.Download != 0 || summary.Stability.Upload != 0 {
		t.Errorf("stability = %v/%v, want 0/0", summary.Stability.Download, summary.Stability.Upload)
	}
}

func TestAnalyzeScenario(t *testing.T) {
	summary := Analyze([]models.Sample{
		sampleAt(10, 50, 10),
		sampleAt(10, 80, 15),
		sampleAt(11, 20, 5),
	})

	if summary.PeakHours.Download != 10 {
		t.Errorf("peak download hour = %d, want 10", summary.PeakHours.Download)
	}
	if summary.LowHours.Download != 11 {
		t.Errorf("low download hour = %d, want 11", summary.LowHours.Download)
	}
	if summary.PeakHours.Upload != 10 {
		t.Errorf("peak upload hour = %d, want 10", summary.PeakHours.Upload)
	}
	if summary.LowHours.Upload != 11 {
		t.Errorf("low upload hour = %d, want 11", summary.LowHours.Upload)
	}

	// Hour 10 downloads {50, 80}: population stddev 15. Hour 11 has one
	// sample, stddev 0. Stability is the mean across hours: 7.5.
	if math.Abs(summary.Stability.Download-7.5) > 1e-9 {
		t.Errorf("download stability = %v, want 7.5", summary.Stability.Download)
	}
	// Hour 10 uploads {10, 15}: stddev 2.5; mean with 0 gives 1.25.
	if math.Abs(summary.Stability.Upload-1.25) > 1e-9 {
		t.Errorf("upload stability = %v, want 1.25", summary.Stability.Upload)
	}
}

func TestAnalyzeTiesGoToSmallestHour(t *testing.T) {
	summary := Analyze([]models.Sample{
		sampleAt(9, 40, 8),
		sampleAt(12, 40, 8),
		sampleAt(15, 40, 8),
	})

	if summary.PeakHours.Download != 9 || summary.LowHours.Download != 9 {
		t.Errorf("download peak/low = %d/%d, want 9/9", summary.PeakHours.Download, summary.LowHours.Download)
	}
	if summary.PeakHours.Upload != 9 || summary.LowHours.Upload != 9 {
		t.Errorf("upload peak/low = %d/%d, want 9/9", summary.PeakHours.Upload, summary.LowHours.Upload)
	}
}

func TestAnalyzeDirectionsIndependent(t *testing.T) {
	// Download peaks at hour 8, upload peaks at hour 20.
	summary := Analyze([]models.Sample{
		sampleAt(8, 90, 5),
		sampleAt(20, 30, 25),
	})

	if summary.PeakHours.Download != 8 {
		t.Errorf("peak download hour = %d, want 8", summary.PeakHours.Download)
	}
	if summary.PeakHours.Upload != 20 {
		t.Errorf("peak upload hour = %d, want 20", summary.PeakHours.Upload)
	}
	if summary.LowHours.Download != 20 {
		t.Errorf("low download hour = %d, want 20", summary.LowHours.Download)
	}
	if summary.LowHours.Upload != 8 {
		t.Errorf("low upload hour = %d, want 8", summary.LowHours.Upload)
	}
}
