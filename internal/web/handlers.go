package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"roomprice/internal/export"
	"roomprice/internal/pricing"
)

type pageData struct {
	Input   string
	Error   string
	Table   *pricing.PriceTable
	Summary pricing.Summary
	Chart   barChart
	Base    string
}

type pricesResponse struct {
	pricing.PriceTable
	Summary pricing.Summary `json:"summary"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("base")
	data := pageData{Input: input}
	status := http.StatusOK

	if input != "" {
		base, err := pricing.ParseBasePrice(input)
		if err != nil {
			s.logger.Debug("Rejected base price", zap.String("input", input), zap.Error(err))
			data.Error = pricing.UserMessage(err)
			status = http.StatusBadRequest
		} else {
			table := s.deriver.Derive(base)
			data.Table = &table
			data.Summary = pricing.Summarize(table)
			data.Chart = newBarChart(table)
			data.Base = base.String()
		}
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.CSVFilename, export.CSVContentType, export.WriteCSV)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, export.XLSXFilename, export.XLSXContentType, export.WriteXLSX)
}

func (s *Server) serveExport(
	w http.ResponseWriter,
	r *http.Request,
	filename, contentType string,
	write func(io.Writer, pricing.PriceTable) error,
) {
	base, err := pricing.ParseBasePrice(r.URL.Query().Get("base"))
	if err != nil {
		http.Error(w, pricing.UserMessage(err), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, s.deriver.Derive(base)); err != nil {
		s.logger.Error("Failed to export prices",
			zap.String("file", filename),
			zap.Error(err))
		http.Error(w, "Internal Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	base, err := pricing.ParseBasePrice(r.URL.Query().Get("base"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": pricing.UserMessage(err)})
		return
	}

	table := s.deriver.Derive(base)
	writeJSON(w, http.StatusOK, pricesResponse{
		PriceTable: table,
		Summary:    pricing.Summarize(table),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(jsonBytes)
}
