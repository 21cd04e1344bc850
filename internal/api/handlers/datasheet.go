package handlers

import (
	"net/http"

	"github.com/gridtools/cablecalc/internal/datasheet"
	"github.com/gridtools/cablecalc/internal/session"
	"github.com/gridtools/cablecalc/internal/storage"
)

type DatasheetHandler struct {
	svc       *datasheet.Service
	sessions  *session.Manager
	store     storage.Store
	maxUpload int64
}

func NewDatasheetHandler(svc *datasheet.Service, sessions *session.Manager, store storage.Store, maxUpload int64) *DatasheetHandler {
	if maxUpload <= 0 {
		maxUpload = 32 << 20
	}
	return &DatasheetHandler{svc: svc, sessions: sessions, store: store, maxUpload: maxUpload}
}

// Extract accepts a multipart datasheet upload, keeps the stored copy for
// later merging, and returns the extracted parameters as JSON.
func (h *DatasheetHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No selected file"})
		return
	}

	res, err := h.svc.Process(r.Context(), file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	old, err := h.sessions.SetPath(w, r, session.KeyUploadedPDF, res.StoredPath)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if old != "" && old != res.StoredPath {
		_ = h.store.Remove(old)
	}

	writeJSON(w, http.StatusOK, res.Parameters)
}
