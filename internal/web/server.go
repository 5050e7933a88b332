// Package web provides the HTTP surface: the status/scanner page, status
// JSON, and the scan/history/alert API.
package web

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/sweeney/ghost-detector/internal/alarm"
	"github.com/sweeney/ghost-detector/internal/scan"
	"github.com/sweeney/ghost-detector/internal/status"
	"github.com/sweeney/ghost-detector/internal/store"
)

// historyLimit caps /api/history responses.
const historyLimit = 100

// reportWindow is the aggregation window for /api/report.
const reportWindow = 24 * time.Hour

// Server serves the status page and scan API over HTTP.
type Server struct {
	httpServer *http.Server
	tracker    *status.Tracker
	scanner    *scan.Scanner
	alarms     *alarm.System
	store      *store.Store
}

// New creates a Server. The store may be nil; history, report, and export
// endpoints then respond 404.
func New(addr string, tracker *status.Tracker, scanner *scan.Scanner, alarms *alarm.System, st *store.Store) *Server {
	s := &Server{
		tracker: tracker,
		scanner: scanner,
		alarms:  alarms,
		store:   st,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/index.html", s.handleIndex)
	mux.HandleFunc("/index.json", s.handleJSON)
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/export.csv", s.handleExportCSV)
	mux.HandleFunc("/api/alerts", s.handleAlerts)
	mux.HandleFunc("/api/alerts/clear", s.handleAlertsClear)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// ListenAndServe starts listening. It blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on the given listener. Useful for tests.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	snap := s.tracker.Snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderHTML(w, snap)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	snap := s.tracker.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	w.Write(status.FormatJSON(snap))
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	out, err := s.scanner.Scan(r.Context())
	if err != nil {
		log.Printf("api scan error: %v", err)
		http.Error(w, "scan failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(formatScanJSON(out))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}

	scans, err := s.store.Recent(r.Context(), historyLimit)
	if err != nil {
		log.Printf("history error: %v", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(formatHistoryJSON(scans))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}

	report, err := s.store.GenerateReport(r.Context(), reportWindow, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			http.Error(w, "no data available for this period", http.StatusNotFound)
			return
		}
		log.Printf("report error: %v", err)
		http.Error(w, "report unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(formatReportJSON(report))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ghost_data_export.csv"`)
	if err := s.store.ExportCSV(r.Context(), w); err != nil {
		log.Printf("csv export error: %v", err)
	}
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	includeAcked := r.URL.Query().Get("all") == "1"
	alerts := s.alarms.Alerts(includeAcked)

	w.Header().Set("Content-Type", "application/json")
	w.Write(formatAlertsJSON(s.alarms.Status(), alerts))
}

func (s *Server) handleAlertsClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.alarms.Clear(time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Alarms cleared"}`))
}
