package tree

import (
	"strings"

	"github.com/matzehuels/tannenbaum/pkg/errors"
)

// Defaults for the tree's fill runes.
const (
	DefaultBranchRune = '*'
	DefaultTrunkRune  = '|'
)

// trunkRows is the fixed number of trunk rows beneath the triangle.
const trunkRows = 2

// Option configures a single render call.
type Option func(*renderer)

type renderer struct {
	branch rune
	trunk  rune
}

// WithBranchRune sets the rune used for triangle rows (default '*').
func WithBranchRune(r rune) Option { return func(t *renderer) { t.branch = r } }

// WithTrunkRune sets the rune used for trunk rows (default '|').
func WithTrunkRune(r rune) Option { return func(t *renderer) { t.trunk = r } }

// Lines computes the ordered rows of a tree of the given height: height
// triangle rows followed by two identical trunk rows. Row i holds
// height-i-1 leading spaces and 2*i+1 branch runes; each trunk row holds
// height-1 leading spaces and a single trunk rune. At height zero the
// trunk indentation clamps to zero and only the two trunk rows remain.
func Lines(height int, opts ...Option) ([]string, error) {
	r, err := newRenderer(height, opts...)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, height+trunkRows)
	for i := 0; i < height; i++ {
		row := strings.Repeat(" ", height-i-1) + strings.Repeat(string(r.branch), 2*i+1)
		lines = append(lines, row)
	}

	trunk := strings.Repeat(" ", max(height-1, 0)) + string(r.trunk)
	for i := 0; i < trunkRows; i++ {
		lines = append(lines, trunk)
	}
	return lines, nil
}

// Render computes the rows of a tree of the given height and joins them
// with a single newline, no trailing separator. The result is a pure
// function of height and options.
func Render(height int, opts ...Option) (string, error) {
	lines, err := Lines(height, opts...)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Width returns the cell width of the widest row for the given height.
// Height zero trees are one cell wide (the bare trunk).
func Width(height int) int {
	return max(2*height-1, 1)
}

func newRenderer(height int, opts ...Option) (renderer, error) {
	if err := errors.ValidateHeight(height); err != nil {
		return renderer{}, err
	}

	r := renderer{branch: DefaultBranchRune, trunk: DefaultTrunkRune}
	for _, opt := range opts {
		opt(&r)
	}

	if err := errors.ValidateFillRune(r.branch); err != nil {
		return renderer{}, err
	}
	if err := errors.ValidateFillRune(r.trunk); err != nil {
		return renderer{}, err
	}
	return r, nil
}
