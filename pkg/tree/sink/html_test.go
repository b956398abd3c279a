package sink

import (
	"strings"
	"testing"
)

func TestHTMLPageDisplay(t *testing.T) {
	var buf strings.Builder
	s := NewHTMLPage(&buf)

	if err := s.Display("  *\n ***\n*****\n  |\n  |"); err != nil {
		t.Fatalf("Display error = %v", err)
	}

	page := buf.String()

	checks := []string{
		"<!doctype html>",
		"<title>Tannenbaum</title>",
		`role="img"`,
		`aria-label="ASCII art Christmas tree"`,
		"  *\n ***\n*****\n  |\n  |",
	}
	for _, want := range checks {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHTMLPageCustomTitle(t *testing.T) {
	var buf strings.Builder
	s := NewHTMLPage(&buf, WithTitle("O Tannenbaum"))

	if err := s.Display("*"); err != nil {
		t.Fatalf("Display error = %v", err)
	}
	if !strings.Contains(buf.String(), "<title>O Tannenbaum</title>") {
		t.Error("page missing custom title")
	}
}

func TestHTMLPageEscapesContent(t *testing.T) {
	var buf strings.Builder
	s := NewHTMLPage(&buf)

	if err := s.Display("<script>alert(1)</script>"); err != nil {
		t.Fatalf("Display error = %v", err)
	}

	page := buf.String()
	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Error("page contains unescaped content")
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Error("page missing escaped content")
	}
}
