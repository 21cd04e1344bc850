package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gridtools/cablecalc/internal/ocr"
)

type HealthHandler struct {
	ocr *ocr.Extractor
}

func NewHealthHandler(extractor *ocr.Extractor) *HealthHandler {
	return &HealthHandler{ocr: extractor}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports whether the OCR toolchain is callable. A text-layer-only
// deployment still answers uploads, but scanned datasheets would fail, so
// missing tools mean not ready.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}

	if h.ocr != nil {
		if err := h.ocr.Available(r.Context()); err != nil {
			checks["ocr"] = "unhealthy: " + err.Error()
		} else {
			checks["ocr"] = "ok"
		}
	}

	status := http.StatusOK
	for _, v := range checks {
		if v != "ok" {
			status = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, status, map[string]interface{}{"status": statusStr(status), "checks": checks})
}

func statusStr(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "unhealthy"
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
