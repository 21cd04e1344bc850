package datasheet

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtools/cablecalc/internal/ocr"
	"github.com/gridtools/cablecalc/internal/storage"
)

func pdfWithText(t *testing.T, lines ...string) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()
	y := 80.0
	for _, line := range lines {
		if line != "" {
			doc.Text(60, y, line)
		}
		y += 16
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func newTestService(t *testing.T, cfg ocr.Config) (*Service, *storage.TempStore) {
	t.Helper()
	store, err := storage.NewTempStore(t.TempDir())
	require.NoError(t, err)
	return NewService(store, ocr.NewExtractor(cfg, nil), nil), store
}

func TestProcessTextLayer(t *testing.T) {
	svc, store := newTestService(t, ocr.Config{})

	doc := pdfWithText(t,
		"CROSS SECTION OF 132KV COPPER CONDUCTOR XLPE INSULATED CABLE",
		"RATED VOLTAGE : 76/132/145 KV",
		"CONDUCTOR SIZE : 1600 SQ.MM",
		"SHORT CIRCUIT CURRENT : 50 KA / 1 SEC",
	)

	res, err := svc.Process(context.Background(), bytes.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "=== PAGE 1 ===")
	assert.True(t, strings.HasSuffix(res.StoredPath, ".pdf"))

	// Stored copy survives for later merging.
	f, err := store.Open(res.StoredPath)
	require.NoError(t, err)
	f.Close()

	p := res.Parameters
	require.NotNil(t, p.VoltageKV)
	assert.InDelta(t, 132, *p.VoltageKV, 1e-9)
	require.NotNil(t, p.ConductorArea)
	assert.InDelta(t, 1600, *p.ConductorArea, 1e-9)
	require.NotNil(t, p.Material)
	assert.Equal(t, "Copper", *p.Material)
}

func TestProcessScannedFallsBackToOCR(t *testing.T) {
	// No text layer and no OCR tools on PATH: the fallback path must be
	// taken and its failure surfaced.
	svc, _ := newTestService(t, ocr.Config{
		Pdftoppm:  "pdftoppm-that-does-not-exist",
		Tesseract: "tesseract-that-does-not-exist",
	})

	doc := pdfWithText(t, "")

	_, err := svc.Process(context.Background(), bytes.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ocr")
}

func TestProcessRejectsNonPDF(t *testing.T) {
	svc, _ := newTestService(t, ocr.Config{
		Pdftoppm:  "pdftoppm-that-does-not-exist",
		Tesseract: "tesseract-that-does-not-exist",
	})

	// Not a PDF: the text layer is unreadable and OCR cannot rasterize.
	_, err := svc.Process(context.Background(), strings.NewReader("plain text, not a pdf"))
	require.Error(t, err)
}
