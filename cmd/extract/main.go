package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/gridtools/cablecalc/internal/config"
	"github.com/gridtools/cablecalc/internal/datasheet"
	"github.com/gridtools/cablecalc/internal/ocr"
	"github.com/gridtools/cablecalc/internal/storage"
)

// One-shot extraction: parameter JSON on stdout, logs on stderr.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extract <datasheet.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read input", "path", path, "error", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewTempStore(cfg.Storage.TmpDir)
	if err != nil {
		logger.Error("init temp store", "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Lang:      cfg.OCR.Lang,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)

	svc := datasheet.NewService(store, extractor, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := svc.ExtractFile(ctx, path)
	if err != nil {
		logger.Error("extraction failed",
			"path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	out, err := json.MarshalIndent(res.Parameters, "", "  ")
	if err != nil {
		logger.Error("encode parameters", "error", err)
		os.Exit(1)
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		os.Exit(1)
	}
}
