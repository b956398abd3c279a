package sink

import (
	"errors"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("surface gone")
}

func TestDisplayNilSink(t *testing.T) {
	if err := Display(nil, "*\n|\n|"); err != nil {
		t.Errorf("Display(nil, ...) error = %v, want nil", err)
	}
}

func TestWriterDisplay(t *testing.T) {
	var buf strings.Builder
	s := NewWriter(&buf)

	if err := Display(s, "  *\n ***\n*****\n  |\n  |"); err != nil {
		t.Fatalf("Display error = %v", err)
	}

	want := "  *\n ***\n*****\n  |\n  |\n"
	if buf.String() != want {
		t.Errorf("written = %q, want %q", buf.String(), want)
	}
}

func TestWriterDisplayReplacesWholeBlock(t *testing.T) {
	var buf strings.Builder
	s := NewWriter(&buf)

	if err := s.Display("*"); err != nil {
		t.Fatalf("Display error = %v", err)
	}
	if got := buf.String(); got != "*\n" {
		t.Errorf("written = %q, want %q", got, "*\n")
	}
}

func TestWriterDisplayError(t *testing.T) {
	s := NewWriter(failingWriter{})
	if err := s.Display("*"); err == nil {
		t.Error("Display on failing writer returned nil error")
	}
}
