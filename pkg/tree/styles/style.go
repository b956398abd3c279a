// Package styles defines the visual appearance of displayed trees.
//
// A Style decorates rendered rows for display without changing their
// text content: the tree's geometry comes from the tree package, and a
// style only wraps rows in terminal escape sequences. Stripping ANSI
// codes from a styled row always yields the original row.
package styles

import (
	"github.com/matzehuels/tannenbaum/pkg/errors"
)

// Style names accepted by For.
const (
	NamePlain   = "plain"
	NameFestive = "festive"
)

// Style decorates rendered tree rows for display.
// Implementations must not alter the row's visible characters.
type Style interface {
	// Branch decorates a triangle row.
	Branch(row string) string
	// Trunk decorates a trunk row.
	Trunk(row string) string
}

// For returns the style registered under name.
func For(name string) (Style, error) {
	switch name {
	case NamePlain:
		return Plain{}, nil
	case NameFestive:
		return Festive{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (valid: %s, %s)", name, NamePlain, NameFestive)
	}
}

// Plain passes rows through untouched.
type Plain struct{}

func (Plain) Branch(row string) string { return row }
func (Plain) Trunk(row string) string  { return row }
