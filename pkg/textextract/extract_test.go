package textextract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Text(72, 100, text)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestPDF(t *testing.T) {
	doc := buildPDF(t, "Voltage Grade 132 kV", "Sheath data page two")

	res, err := PDF(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Content, "=== PAGE 1 ===")
	assert.Contains(t, res.Content, "=== PAGE 2 ===")
	assert.Contains(t, res.Content, "Voltage Grade 132 kV")
	assert.Contains(t, res.Content, "Sheath data page two")
	assert.Less(t, strings.Index(res.Content, "=== PAGE 1 ==="), strings.Index(res.Content, "=== PAGE 2 ==="))
	assert.Greater(t, res.TextChars, 0)
}

func TestPDFEmptyTextLayer(t *testing.T) {
	// A page with no text layer, as a scanned document would have.
	doc := buildPDF(t, "")

	res, err := PDF(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, 0, res.TextChars)
	assert.Contains(t, res.Content, "=== PAGE 1 ===")
}

func TestPDFGarbage(t *testing.T) {
	junk := []byte("this is not a pdf at all")
	_, err := PDF(bytes.NewReader(junk), int64(len(junk)))
	assert.Error(t, err)
}

func TestPDFFile(t *testing.T) {
	doc := buildPDF(t, "on disk")
	path := filepath.Join(t.TempDir(), "sample.pdf")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	res, err := PDFFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Content, "on disk")

	_, err = PDFFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
