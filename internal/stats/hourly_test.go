package stats

import "testing"

func TestHourlyAggregatorScenario(t *testing.T) {
	agg := NewHourlyAggregator()
	agg.Accumulate(sampleAt(10, 50, 10))
	agg.Accumulate(sampleAt(10, 80, 15))
	agg.Accumulate(sampleAt(11, 20, 5))

	agg.Finalize(10)
	agg.Finalize(11)

	averages := agg.Averages()
	if len(averages) != 2 {
		t.Fatalf("expected 2 hourly averages, got %d", len(averages))
	}

	ten := averages[10]
	if ten.DownloadMbps != 65 || ten.UploadMbps != 12.5 || ten.Samples != 2 {
		t.Errorf("hour 10 = {%.1f %.1f %d}, want {65.0 12.5 2}", ten.DownloadMbps, ten.UploadMbps, ten.Samples)
	}

	eleven := averages[11]
	if eleven.DownloadMbps != 20 || eleven.UploadMbps != 5 || eleven.Samples != 1 {
		t.Errorf("hour 11 = {%.1f %.1f %d}, want {20.0 5.0 1}", eleven.DownloadMbps, eleven.UploadMbps, eleven.Samples)
	}
}

func TestHourlyAggregatorEmptyFinalizeIsNoOp(t *testing.T) {
	agg := NewHourlyAggregator()

	agg.Finalize(7)

	if averages := agg.Averages(); len(averages) != 0 {
		t.Fatalf("expected no entries after finalizing an empty hour, got %v", averages)
	}
}

func TestHourlyAggregatorFinalizeClearsBucket(t *testing.T) {
	agg := NewHourlyAggregator()
	agg.Accumulate(sampleAt(10, 50, 10))
	agg.Finalize(10)

	// A second finalize with nothing newly accumulated writes nothing new.
	agg.Finalize(10)

	if got := agg.Averages()[10].Samples; got != 1 {
		t.Errorf("sample count = %d, want 1", got)
	}
}

func TestHourlyAggregatorSecondFinalizeOverwrites(t *testing.T) {
	agg := NewHourlyAggregator()

	// Same hour of day reached again, e.g. a run wrapping past midnight.
	agg.Accumulate(sampleAt(10, 100, 20))
	agg.Finalize(10)
	agg.Accumulate(sampleAt(10, 30, 6))
	agg.Finalize(10)

	got := agg.Averages()[10]
	if got.DownloadMbps != 30 || got.Samples != 1 {
		t.Errorf("hour 10 after overwrite = {%.1f %d}, want {30.0 1}", got.DownloadMbps, got.Samples)
	}
}
