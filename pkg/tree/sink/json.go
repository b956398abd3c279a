package sink

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/tannenbaum/pkg/errors"
)

// JSONOption configures a JSON sink.
type JSONOption func(*JSON)

// WithJSONHeight records the requested tree height in the JSON output,
// enabling reproducible re-rendering.
func WithJSONHeight(h int) JSONOption { return func(s *JSON) { s.height = h; s.hasHeight = true } }

// WithJSONRunes records the fill runes used for the render.
func WithJSONRunes(branch, trunk rune) JSONOption {
	return func(s *JSON) { s.branch = string(branch); s.trunk = string(trunk) }
}

// JSON displays tree text as a JSON document describing the render:
// the row lines plus the parameters needed to reproduce them.
type JSON struct {
	w         io.Writer
	height    int
	hasHeight bool
	branch    string
	trunk     string
}

type jsonOutput struct {
	Height *int     `json:"height,omitempty"`
	Branch string   `json:"branch,omitempty"`
	Trunk  string   `json:"trunk,omitempty"`
	Rows   int      `json:"rows"`
	Width  int      `json:"width"`
	Lines  []string `json:"lines"`
}

// NewJSON creates a JSON sink backed by w.
func NewJSON(w io.Writer, opts ...JSONOption) *JSON {
	s := &JSON{w: w}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Display implements Sink.
func (s *JSON) Display(text string) error {
	lines := strings.Split(text, "\n")

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	out := jsonOutput{
		Branch: s.branch,
		Trunk:  s.trunk,
		Rows:   len(lines),
		Width:  width,
		Lines:  lines,
	}
	if s.hasHeight {
		out.Height = &s.height
	}

	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode render")
	}
	return nil
}
