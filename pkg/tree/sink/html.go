package sink

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/matzehuels/tannenbaum/pkg/errors"
)

// pageTemplate is the static page wrapped around the tree text.
//
//go:embed page.html.tmpl
var pageTemplate string

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// DefaultPageTitle is the heading shown above the tree.
const DefaultPageTitle = "Tannenbaum"

// pageLabel is the accessible description of the <pre> output region.
const pageLabel = "ASCII art Christmas tree"

// HTMLPage displays tree text as a complete self-contained HTML page
// written to an io.Writer. The page carries its own styling and an
// accessible label; the tree text itself is embedded verbatim (escaped)
// inside a <pre> region.
type HTMLPage struct {
	w     io.Writer
	title string
}

// HTMLOption configures an HTMLPage sink.
type HTMLOption func(*HTMLPage)

// WithTitle overrides the page heading (default DefaultPageTitle).
func WithTitle(title string) HTMLOption { return func(s *HTMLPage) { s.title = title } }

// NewHTMLPage creates a page sink backed by w.
func NewHTMLPage(w io.Writer, opts ...HTMLOption) *HTMLPage {
	s := &HTMLPage{w: w, title: DefaultPageTitle}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Display implements Sink.
func (s *HTMLPage) Display(text string) error {
	data := struct {
		Title string
		Label string
		Tree  string
	}{
		Title: s.title,
		Label: pageLabel,
		Tree:  text,
	}
	if err := pageTmpl.Execute(s.w, data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render page")
	}
	return nil
}
