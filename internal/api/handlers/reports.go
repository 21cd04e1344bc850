package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gridtools/cablecalc/internal/report"
	"github.com/gridtools/cablecalc/internal/session"
	"github.com/gridtools/cablecalc/internal/storage"
)

type ReportHandler struct {
	sessions *session.Manager
	store    storage.Store
}

func NewReportHandler(sessions *session.Manager, store storage.Store) *ReportHandler {
	return &ReportHandler{sessions: sessions, store: store}
}

func (h *ReportHandler) GenerateConductor(w http.ResponseWriter, r *http.Request) {
	h.generateCalc(w, r, session.KeyConductorPDF, "Conductor_Calculation_Report.pdf", report.BuildConductor)
}

func (h *ReportHandler) GenerateSheath(w http.ResponseWriter, r *http.Request) {
	h.generateCalc(w, r, session.KeySheathPDF, "Sheath_Calculation_Report.pdf", report.BuildSheath)
}

// generateCalc renders one calculation sheet from the posted data, stores a
// copy for later merging, and returns the PDF as an attachment.
func (h *ReportHandler) generateCalc(w http.ResponseWriter, r *http.Request, key, filename string, build func(report.Data) ([]byte, error)) {
	var data report.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	doc, err := build(data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	path, err := h.store.Save(bytes.NewReader(doc), ".pdf")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	old, err := h.sessions.SetPath(w, r, key, path)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if old != "" && old != path {
		_ = h.store.Remove(old)
	}

	sendPDF(w, filename, doc)
}

// GenerateSummary renders the plain text-block report. Nothing is stored in
// the session for it.
func (h *ReportHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var raw interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON body must be an object"})
		return
	}

	data := report.Data(obj)
	doc, err := report.BuildSummary(
		data.StrOr("title", "Cable Short Circuit Calculation"),
		data.Str("conductorText"),
		data.Str("sheathText"),
	)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	sendPDF(w, "Cable_ShortCircuit_Report.pdf", doc)
}

type mergeRequest struct {
	ConductorData report.Data `json:"conductorData"`
	SheathData    report.Data `json:"sheathData"`
}

// GenerateMerged combines whatever is available, in fixed order: conductor
// report, sheath report, uploaded datasheet. Posted data regenerates a
// report in place of the stored copy.
func (h *ReportHandler) GenerateMerged(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid JSON: %v", err)})
		return
	}

	var parts [][]byte
	if doc := h.reportPart(r, req.ConductorData, report.BuildConductor, session.KeyConductorPDF); doc != nil {
		parts = append(parts, doc)
	}
	if doc := h.reportPart(r, req.SheathData, report.BuildSheath, session.KeySheathPDF); doc != nil {
		parts = append(parts, doc)
	}
	if path := h.sessions.Path(r, session.KeyUploadedPDF); path != "" {
		if doc, err := h.readStored(path); err == nil {
			parts = append(parts, doc)
		}
	}

	if len(parts) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "No reports available to merge. Please upload a PDF or generate at least one calculation.",
		})
		return
	}

	merged, err := report.Merge(parts...)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	sendPDF(w, "Complete_Cable_Analysis_Report.pdf", merged)
}

// reportPart renders a section from posted data when present; without data
// it falls back to the copy stored earlier in the session. A failed
// regeneration skips the section rather than failing the merge.
func (h *ReportHandler) reportPart(r *http.Request, data report.Data, build func(report.Data) ([]byte, error), key string) []byte {
	if len(data) > 0 {
		doc, err := build(data)
		if err != nil {
			slog.Warn("report regeneration failed", "session_key", key, "error", err)
			return nil
		}
		return doc
	}

	if path := h.sessions.Path(r, key); path != "" {
		if doc, err := h.readStored(path); err == nil {
			return doc
		}
	}
	return nil
}

func (h *ReportHandler) readStored(path string) ([]byte, error) {
	f, err := h.store.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func sendPDF(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
