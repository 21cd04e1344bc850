// Package datasheet orchestrates the upload pipeline: persist the PDF, get
// its text, extract the cable parameters.
package datasheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gridtools/cablecalc/internal/extract"
	"github.com/gridtools/cablecalc/internal/ocr"
	"github.com/gridtools/cablecalc/internal/storage"
	"github.com/gridtools/cablecalc/pkg/textextract"
)

// minTextChars is the text-layer size below which a PDF is treated as
// scanned and sent through OCR.
const minTextChars = 50

type Service struct {
	store  storage.Store
	ocr    *ocr.Extractor
	logger *slog.Logger
}

func NewService(store storage.Store, extractor *ocr.Extractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, ocr: extractor, logger: logger}
}

// Result is the outcome of processing one datasheet.
type Result struct {
	StoredPath string
	Text       string
	Method     string // "pdf-text" or "pdf-ocr"
	Pages      int
	Parameters extract.Parameters
}

// Process persists the upload to the temp store, acquires its text, and
// extracts the nameplate parameters. The stored file is kept for later
// merging; the caller owns its lifetime.
func (s *Service) Process(ctx context.Context, upload io.Reader) (*Result, error) {
	path, err := s.store.Save(upload, ".pdf")
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	res, err := s.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	res.StoredPath = path
	return res, nil
}

// ExtractFile runs text acquisition and parameter extraction on a PDF
// already on disk.
func (s *Service) ExtractFile(ctx context.Context, path string) (*Result, error) {
	text, method, pages, err := s.acquireText(ctx, path)
	if err != nil {
		return nil, err
	}

	return &Result{
		StoredPath: path,
		Text:       text,
		Method:     method,
		Pages:      pages,
		Parameters: extract.CableParameters(text),
	}, nil
}

// acquireText reads the embedded text layer first; scanned documents, whose
// text layer is missing or nearly empty, fall back to OCR.
func (s *Service) acquireText(ctx context.Context, path string) (string, string, int, error) {
	start := time.Now()

	layer, err := textextract.PDFFile(path)
	if err == nil && layer.TextChars >= minTextChars {
		s.logger.Info("text layer used",
			"path", path,
			"pages", layer.Pages,
			"chars", layer.TextChars,
			"duration_ms", time.Since(start).Milliseconds())
		return layer.Content, "pdf-text", layer.Pages, nil
	}
	if err != nil {
		s.logger.Warn("text layer unreadable, trying OCR", "path", path, "error", err)
	}

	res, err := s.ocr.ExtractPDF(ctx, path)
	if err != nil {
		return "", "", 0, fmt.Errorf("ocr: %w", err)
	}
	s.logger.Info("ocr used",
		"path", path,
		"pages", res.Pages,
		"duration_ms", res.Duration.Milliseconds(),
		"warnings", len(res.Warnings))
	return res.Text, res.Method, res.Pages, nil
}
