package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNothingToMerge is returned by Merge when no documents were supplied.
var ErrNothingToMerge = errors.New("report: no documents to merge")

// Merge concatenates the given PDF documents, in order, into one document.
func Merge(parts ...[]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrNothingToMerge
	}

	rsc := make([]io.ReadSeeker, 0, len(parts))
	for _, p := range parts {
		rsc = append(rsc, bytes.NewReader(p))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(rsc, &buf, false, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("report: merge: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount reports how many pages a PDF document has.
func PageCount(doc []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("report: page count: %w", err)
	}
	return ctx.PageCount, nil
}
