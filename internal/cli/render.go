package cli

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tannenbaum/pkg/config"
	"github.com/matzehuels/tannenbaum/pkg/errors"
	"github.com/matzehuels/tannenbaum/pkg/observability"
	"github.com/matzehuels/tannenbaum/pkg/tree"
	"github.com/matzehuels/tannenbaum/pkg/tree/sink"
	"github.com/matzehuels/tannenbaum/pkg/tree/styles"
)

// Output formats supported by the render command.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// ValidFormats maps recognized output format names.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatHTML: true,
	FormatJSON: true,
}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: %s, %s, %s)", format, FormatText, FormatHTML, FormatJSON)
	}
	return nil
}

// renderParams holds one fully resolved render request.
type renderParams struct {
	height int
	branch rune
	trunk  rune
	style  styles.Style
	format string
	output string
	title  string
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		branch     string
		trunk      string
		styleName  string
		format     string
		output     string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "render [height]",
		Short: "Render a Christmas tree of the given height",
		Long: `Render a Christmas tree of the given height.

The tree is a symmetric triangle of the requested number of rows above a
fixed two-row trunk. With no height argument the configured default is
used (10 unless overridden in the config file).

Height 0 renders the bare trunk. Negative heights are rejected.

The text format writes the tree as-is, the html format wraps it in a
self-contained static page suitable for opening in a browser, and the
json format exports the rows plus the parameters needed to reproduce
them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			p := renderParams{
				height: cfg.Height,
				branch: cfg.BranchRune(),
				trunk:  cfg.TrunkRune(),
				format: format,
				output: output,
				title:  title,
			}

			if len(args) == 1 {
				if p.height, err = parseHeight(args[0]); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("branch") {
				if p.branch, err = parseFillRune("branch", branch); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("trunk") {
				if p.trunk, err = parseFillRune("trunk", trunk); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("style") {
				cfg.Style = styleName
			}
			if p.style, err = styles.For(cfg.Style); err != nil {
				return err
			}

			if err := ValidateFormat(p.format); err != nil {
				return err
			}

			return c.runRender(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: XDG config dir)")
	cmd.Flags().StringVar(&branch, "branch", "*", "rune used for triangle rows")
	cmd.Flags().StringVar(&trunk, "trunk", "|", "rune used for trunk rows")
	cmd.Flags().StringVar(&styleName, "style", styles.NamePlain, "display style: plain (default), festive")
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text (default), html, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", sink.DefaultPageTitle, "page title (html format)")

	return cmd
}

// runRender computes the tree and displays it as one atomic step.
func (c *CLI) runRender(ctx context.Context, p renderParams) error {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, p.height)

	lines, err := tree.Lines(p.height, tree.WithBranchRune(p.branch), tree.WithTrunkRune(p.trunk))
	if err != nil {
		observability.Render().OnRenderComplete(ctx, p.height, 0, time.Since(start), err)
		return err
	}
	c.Logger.Debug("computed tree", "height", p.height, "rows", len(lines), "width", tree.Width(p.height))

	out, closeOut, err := openOutput(p.output)
	if err != nil {
		observability.Render().OnRenderComplete(ctx, p.height, len(lines), time.Since(start), err)
		return err
	}
	defer closeOut()

	var s sink.Sink
	var text string
	switch p.format {
	case FormatHTML:
		// The page carries its own styling; the tree text stays raw.
		s = sink.NewHTMLPage(out, sink.WithTitle(p.title))
		text = strings.Join(lines, "\n")
	case FormatJSON:
		s = sink.NewJSON(out, sink.WithJSONHeight(p.height), sink.WithJSONRunes(p.branch, p.trunk))
		text = strings.Join(lines, "\n")
	default:
		s = sink.NewWriter(out)
		text = strings.Join(decorate(lines, p.height, p.style), "\n")
	}

	err = sink.Display(s, text)
	observability.Render().OnRenderComplete(ctx, p.height, len(lines), time.Since(start), err)
	if err != nil {
		printError("display failed: %s", errors.UserMessage(err))
		return err
	}
	observability.Render().OnDisplay(ctx, p.format, len(text))

	if p.output != "" {
		printSuccess("rendered tree (height %d)", p.height)
		printFile(p.output)
	}
	return nil
}

// decorate applies the display style row by row: the first height rows
// are branches, the remainder is trunk.
func decorate(lines []string, height int, style styles.Style) []string {
	styled := make([]string, len(lines))
	for i, row := range lines {
		if i < height {
			styled[i] = style.Branch(row)
		} else {
			styled[i] = style.Trunk(row)
		}
	}
	return styled
}

// parseHeight parses a positional height argument.
func parseHeight(arg string) (int, error) {
	h, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidHeight, "height must be an integer, got %q", arg)
	}
	return h, nil
}

// parseFillRune parses a single-rune flag value.
func parseFillRune(name, value string) (rune, error) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidRune, "%s must be a single character, got %q", name, value)
	}
	return runes[0], nil
}

// openOutput opens the output destination: a file when path is set,
// stdout otherwise. The returned closer is a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	return f, func() { f.Close() }, nil
}
