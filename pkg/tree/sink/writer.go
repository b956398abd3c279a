package sink

import (
	"fmt"
	"io"

	"github.com/matzehuels/tannenbaum/pkg/errors"
)

// Writer displays tree text by writing it, plus a trailing newline, to
// an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a sink backed by w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Display implements Sink.
func (s *Writer) Display(text string) error {
	if _, err := fmt.Fprintln(s.w, text); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write tree text")
	}
	return nil
}
