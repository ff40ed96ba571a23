package api

import (
	"net/http"

	"boxful-client/internal/api/handlers"
)

// NewRouter wires the report handlers over h and returns an http.Handler.
// onServed runs after an export has been delivered.
func NewRouter(h handlers.History, onServed func()) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{History: h}
	reportHandler := &handlers.ReportHandler{History: h, OnServed: onServed}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/stats", orderHandler.Stats)
	mux.HandleFunc("/report", reportHandler.Print)
	mux.HandleFunc("/report.csv", reportHandler.CSV)

	return loggingMiddleware(mux)
}
