package ocr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPages is returned when rasterization produces no page images.
	ErrNoPages = errors.New("no pages rendered")

	// ErrToolMissing is returned when a required external binary cannot be
	// run at all.
	ErrToolMissing = errors.New("ocr tool not available")
)

// Error wraps a failure in the OCR pipeline with the operation that failed.
type Error struct {
	// Op is the operation that failed, e.g. "rasterize" or "recognize".
	Op string

	// Err is the underlying error.
	Err error

	// Details carries extra context, typically the tool's stderr.
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newError(op string, err error, details string) *Error {
	return &Error{Op: op, Err: err, Details: details}
}
