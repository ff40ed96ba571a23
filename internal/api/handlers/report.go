package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ReportHandler renders the history exports. OnServed, when set, runs after
// each export was written in full.
type ReportHandler struct {
	History  History
	OnServed func()
}

// Print serves the printable HTML report.
func (h *ReportHandler) Print(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	var buf bytes.Buffer
	if err := h.History.WriteReport(&buf); err != nil {
		log.Error().Err(err).Msg("render report failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("write report failed")
		return
	}
	h.served()
}

// CSV serves the CSV export as a download.
func (h *ReportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	var buf bytes.Buffer
	name, err := h.History.WriteCSV(&buf)
	if err != nil {
		log.Error().Err(err).Msg("render csv failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("write csv failed")
		return
	}
	h.served()
}

func (h *ReportHandler) served() {
	if h.OnServed != nil {
		h.OnServed()
	}
}
