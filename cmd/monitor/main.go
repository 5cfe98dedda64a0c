package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/config"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/database"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/monitor"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/probe"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/report"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/web"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	runID := uuid.NewString()

	// Initialize the recording sink, if enabled
	var db *database.DB
	if cfg.DatabasePath != "" {
		db, err = database.New(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize database schema: %v", err)
		}
	}

	// Initialize components
	connectivity := probe.NewConnectivityProbe(cfg.ConnectivityTarget, cfg.ConnectivityTimeout)
	// A measurement gets at most one poll interval to finish.
	speed := probe.NewSpeedProbe(cfg.SpeedURL, cfg.PollInterval)

	opts := []monitor.Option{}
	if db != nil {
		opts = append(opts, monitor.WithRecorder(db))
	}
	mon := monitor.New(cfg, runID, connectivity, speed, opts...)

	var webServer *web.Server
	if cfg.Port > 0 {
		webServer = web.New(db, cfg.Port, runID)
		go func() {
			if err := webServer.Start(); err != nil {
				log.Printf("Web server stopped: %v", err)
			}
		}()
		log.Printf("Web interface available at http://localhost:%d", cfg.Port)
	}

	log.Printf("Monitoring for %v, measuring every %v", cfg.Duration, cfg.PollInterval)

	result := mon.Run()

	if webServer != nil {
		webServer.SetReport(result)
	}

	generator := report.NewGenerator(db)
	if _, err := generator.GenerateReport(cfg.ReportDir, result); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	log.Println("Monitoring completed. Report generated.")

	// Keep the API up until interrupted so the report stays browsable.
	if webServer != nil {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
	}
}
