// Package textextract pulls the embedded text layer out of a PDF.
//
// Output is framed per page with "=== PAGE n ===" markers so downstream
// parsing sees the same shape whether the text came from the text layer or
// from OCR.
package textextract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

type ExtractedText struct {
	Content string
	Pages   int

	// TextChars is the total length of the trimmed text recovered per
	// page, excluding the page markers. Scanned documents have a text
	// layer that is empty or nearly so; callers use this to decide
	// whether OCR is needed.
	TextChars int
}

// PDF reads the text layer of the document in data. Pages the library cannot
// decode contribute an empty frame rather than failing the document.
func PDF(data io.ReaderAt, size int64) (*ExtractedText, error) {
	reader, err := pdf.NewReader(data, size)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	return readPages(reader)
}

// PDFFile is PDF for a document on disk.
func PDFFile(path string) (*ExtractedText, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()
	return readPages(reader)
}

func readPages(reader *pdf.Reader) (*ExtractedText, error) {
	numPages := reader.NumPage()
	chunks := make([]string, 0, numPages)
	textChars := 0

	for i := 1; i <= numPages; i++ {
		var text string
		page := reader.Page(i)
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		textChars += len(strings.TrimSpace(text))
		chunks = append(chunks, fmt.Sprintf("=== PAGE %d ===\n%s", i, text))
	}

	return &ExtractedText{
		Content:   strings.Join(chunks, "\n"),
		Pages:     numPages,
		TextChars: textChars,
	}, nil
}
