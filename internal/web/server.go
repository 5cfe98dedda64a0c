package web

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/database"
	"github.com/Sharon-codes/Wifi-Speed-Monitor/internal/models"
)

// Server exposes the run's recorded measurements and, once the run has
// finished, its report over a JSON API.
type Server struct {
	db    *database.DB
	port  int
	runID string

	mu     sync.RWMutex
	report *models.Report
}

// New creates a new web server. db may be nil when recording is disabled;
// the sample and disconnection endpoints then report that recording is off.
func New(db *database.DB, port int, runID string) *Server {
	return &Server{
		db:    db,
		port:  port,
		runID: runID,
	}
}

// SetReport publishes the finished run's report to /api/report.
func (s *Server) SetReport(r models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &r
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/samples", s.handleSamples)
	mux.HandleFunc("/api/disconnections", s.handleDisconnections)
	mux.HandleFunc("/api/report", s.handleReport)

	log.Printf("Web server starting on port %d", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}
