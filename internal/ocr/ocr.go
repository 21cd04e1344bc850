// Package ocr rasterizes PDF pages with pdftoppm and recognizes them with
// tesseract. Both tools run as subprocesses behind a Runner so tests can
// stub them.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang     string // default "eng"
	DPI      int    // rasterization DPI, default 200
	MaxPages int    // 0 = no limit

	PSM int // page segmentation mode; 6 suits datasheet tables
	OEM int // engine mode; 3 = default LSTM+legacy
}

type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-ocr"
	Language string
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.OEM <= 0 {
		cfg.OEM = 3
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Available verifies that both external tools can be invoked. Used by the
// readiness probe.
func (e *Extractor) Available(ctx context.Context) error {
	if _, _, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-v"); err != nil {
		return newError("check", ErrToolMissing, e.cfg.Pdftoppm)
	}
	if _, _, err := e.runner.Run(ctx, e.cfg.Tesseract, "--version"); err != nil {
		return newError("check", ErrToolMissing, e.cfg.Tesseract)
	}
	return nil
}

// ExtractPDF renders every page to PNG and recognizes them one by one. Page
// text is framed with "=== PAGE n ===" markers. A page that fails to
// recognize contributes an empty frame and a warning; only a rasterization
// failure aborts the whole document.
func (e *Extractor) ExtractPDF(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	tmpDir, err := os.MkdirTemp("", "cablecalc-pp-*")
	if err != nil {
		return Result{}, newError("rasterize", err, "")
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{}, newError("rasterize", err, truncate(string(errb), 8<<10))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{}, newError("rasterize", ErrNoPages, "pdftoppm produced no images")
	}

	var b strings.Builder
	var warns []string
	for i, img := range matches {
		txt, err := e.recognize(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			txt = ""
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "=== PAGE %d ===\n%s", i+1, txt)
	}

	return Result{
		Text:     b.String(),
		Pages:    len(matches),
		Method:   "pdf-ocr",
		Language: e.cfg.Lang,
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}

// recognize runs tesseract on a single page image.
func (e *Extractor) recognize(ctx context.Context, img string) (string, error) {
	args := []string{img, "stdout", "-l", e.cfg.Lang,
		"--oem", fmt.Sprintf("%d", e.cfg.OEM),
		"--psm", fmt.Sprintf("%d", e.cfg.PSM),
	}

	// tesseract <img> stdout -l eng --oem 3 --psm 6
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", newError("recognize", err, truncate(string(errb), 8<<10))
	}
	return string(out), nil
}
