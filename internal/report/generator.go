package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/database"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// Generator writes the report artifacts: the text summary plus speed charts
// rendered from the recorded samples.
type Generator struct {
	db *database.DB
}

// NewGenerator creates a report generator. db may be nil when recording is
// disabled; charts are skipped in that case.
func NewGenerator(db *database.DB) *Generator {
	return &Generator{db: db}
}

// GenerateReport writes the report files into a timestamped directory under
// outputDir and returns the directory's path. Chart failures are logged, not
// fatal; the text summary is the one artifact that must succeed.
func (g *Generator) GenerateReport(outputDir string, r models.Report) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := r.GeneratedAt.Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("wifi_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := g.writeTextReport(reportDir, r); err != nil {
		return "", err
	}

	if g.db != nil {
		if err := g.generateSpeedChart(reportDir, r.RunID); err != nil {
			log.Printf("Failed to generate speed chart: %v", err)
		}
	}

	if err := g.generateHourlyChart(reportDir, r); err != nil {
		log.Printf("Failed to generate hourly averages chart: %v", err)
	}

	log.Printf("Report generated in: %s", reportDir)
	return reportDir, nil
}

func (g *Generator) writeTextReport(reportDir string, r models.Report) error {
	filename := filepath.Join(reportDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteText(file, r); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	// Echo to the terminal as well.
	WriteText(os.Stdout, r)
	return nil
}
