package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

func (g *Generator) generateSpeedChart(outputDir, runID string) error {
	samples, err := g.db.GetSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		// Not enough points for a time series.
		return nil
	}

	timestamps := make([]time.Time, 0, len(samples))
	downloads := make([]float64, 0, len(samples))
	uploads := make([]float64, 0, len(samples))
	for _, s := range samples {
		timestamps = append(timestamps, s.Timestamp)
		downloads = append(downloads, s.DownloadMbps)
		uploads = append(uploads, s.UploadMbps)
	}

	graph := chart.Chart{
		Title: "Connection Speed Over Time",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeMinuteValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Speed (Mbps)",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Download",
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(0),
					StrokeWidth: 2,
				},
				XValues: timestamps,
				YValues: downloads,
			},
			chart.TimeSeries{
				Name: "Upload",
				Style: chart.Style{
					StrokeColor: chart.GetDefaultColor(1),
					StrokeWidth: 2,
				},
				XValues: timestamps,
				YValues: uploads,
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	filename := filepath.Join(outputDir, "speed_over_time.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func (g *Generator) generateHourlyChart(outputDir string, r models.Report) error {
	if len(r.HourlyAverages) == 0 {
		return nil
	}

	hours := make([]int, 0, len(r.HourlyAverages))
	for h := range r.HourlyAverages {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	var values []chart.Value
	for _, h := range hours {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%02d:00", h),
			Value: r.HourlyAverages[h].DownloadMbps,
		})
	}

	graph := chart.BarChart{
		Title: "Average Download Speed by Hour",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    1200,
		Height:   400,
		Bars:     values,
		BarWidth: 40,
	}

	filename := filepath.Join(outputDir, "hourly_download.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
