package web

import (
	"encoding/json"
	"net/http"
)

// handleStatus handles /api/status requests
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	done := s.report != nil
	s.mu.RUnlock()

	status := map[string]any{
		"run_id":    s.runID,
		"recording": s.db != nil,
		"completed": done,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// handleSamples handles /api/samples requests
func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		http.Error(w, "recording disabled", http.StatusNotFound)
		return
	}

	samples, err := s.db.GetSamples(s.runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(samples)
}

// handleDisconnections handles /api/disconnections requests
func (s *Server) handleDisconnections(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		http.Error(w, "recording disabled", http.StatusNotFound)
		return
	}

	disconnections, err := s.db.GetDisconnections(s.runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(disconnections)
}

// handleReport handles /api/report requests
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report == nil {
		http.Error(w, "monitoring run still in progress", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
