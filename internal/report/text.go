package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

func header(title string) string {
	bar := strings.Repeat("=", 30)
	return bar + " " + title + " " + bar
}

// WriteText renders the report as the monitoring summary text document. The
// rendering is a lossless projection: every field of the report appears.
func WriteText(w io.Writer, r models.Report) error {
	var b strings.Builder

	fmt.Fprintln(&b, header("WiFi Monitoring Report"))
	fmt.Fprintf(&b, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(&b, "Monitoring started at: %s\n", r.StartedAt.Format(timeFormat))
	fmt.Fprintf(&b, "Report generated at: %s\n", r.GeneratedAt.Format(timeFormat))
	fmt.Fprintf(&b, "Samples collected: %d\n\n", r.SampleCount)

	fmt.Fprintln(&b, header("Speed Extremes"))
	if r.Extremes != nil {
		writeExtreme(&b, "Maximum Download", r.Extremes.MaxDownload)
		writeExtreme(&b, "Minimum Download", r.Extremes.MinDownload)
		writeExtreme(&b, "Maximum Upload", r.Extremes.MaxUpload)
		writeExtreme(&b, "Minimum Upload", r.Extremes.MinUpload)
	} else {
		fmt.Fprintln(&b, "No speed samples recorded")
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, header("Connection Summary"))
	fmt.Fprintf(&b, "Total Disconnection Time: %v\n", r.TotalDowntime)
	fmt.Fprintf(&b, "Number of Disconnections: %d\n\n", len(r.Disconnections))

	fmt.Fprintln(&b, header("Detailed Disconnections"))
	if len(r.Disconnections) > 0 {
		for _, d := range r.Disconnections {
			fmt.Fprintf(&b, "Disconnected at: %s\n", d.Start.Format(timeFormat))
			fmt.Fprintf(&b, "Reconnected at: %s\n", d.End.Format(timeFormat))
			fmt.Fprintf(&b, "Duration: %v\n\n", d.Duration)
		}
	} else {
		fmt.Fprintln(&b, "No disconnections recorded")
		fmt.Fprintln(&b)
	}

	if r.Patterns != nil {
		fmt.Fprintln(&b, header("Speed Patterns"))
		fmt.Fprintf(&b, "Peak Download Speed Hour: %02d:00\n", r.Patterns.PeakHours.Download)
		fmt.Fprintf(&b, "Peak Upload Speed Hour: %02d:00\n", r.Patterns.PeakHours.Upload)
		fmt.Fprintf(&b, "Lowest Download Speed Hour: %02d:00\n", r.Patterns.LowHours.Download)
		fmt.Fprintf(&b, "Lowest Upload Speed Hour: %02d:00\n", r.Patterns.LowHours.Upload)
		fmt.Fprintln(&b, "\nConnection Stability (lower is better):")
		fmt.Fprintf(&b, "Download Stability Score: %.2f\n", r.Patterns.Stability.Download)
		fmt.Fprintf(&b, "Upload Stability Score: %.2f\n\n", r.Patterns.Stability.Upload)
	}

	fmt.Fprintln(&b, header("Hourly Speed Averages"))
	hours := make([]int, 0, len(r.HourlyAverages))
	for h := range r.HourlyAverages {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	for _, h := range hours {
		avg := r.HourlyAverages[h]
		fmt.Fprintf(&b, "\nHour %02d:00\n", h)
		fmt.Fprintf(&b, "Average Download: %.2f Mbps\n", avg.DownloadMbps)
		fmt.Fprintf(&b, "Average Upload: %.2f Mbps\n", avg.UploadMbps)
		fmt.Fprintf(&b, "Samples taken: %d\n", avg.Samples)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeExtreme(w io.Writer, label string, e models.Extreme) {
	fmt.Fprintf(w, "%s: %.2f Mbps at %s\n", label, e.SpeedMbps, e.Timestamp.Format(timeFormat))
}
