package errors

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// MaxHeight bounds render requests to keep output sizes sane.
// Total output is quadratic in height, so this caps a render at
// roughly 100 MB of text.
const MaxHeight = 10000

// ValidateHeight validates a tree height argument.
//
// The validation rules are intentionally conservative:
//   - Height cannot be negative (the row formulas produce negative
//     repeat counts below zero)
//   - Height cannot exceed MaxHeight
//
// Height zero is accepted: it renders a bare two-row trunk.
func ValidateHeight(h int) error {
	if h < 0 {
		return New(ErrCodeInvalidHeight, "height must be non-negative, got %d", h)
	}
	if h > MaxHeight {
		return New(ErrCodeInvalidHeight, "height too large (max %d), got %d", MaxHeight, h)
	}
	return nil
}

// ValidateFillRune validates a rune used to draw tree rows.
// Spaces and control characters would break the row geometry, and
// wide runes would break column alignment, so only single-cell
// printable runes are accepted.
func ValidateFillRune(r rune) error {
	if unicode.IsSpace(r) {
		return New(ErrCodeInvalidRune, "fill rune cannot be whitespace")
	}
	if unicode.IsControl(r) {
		return New(ErrCodeInvalidRune, "fill rune cannot be a control character")
	}
	if !unicode.IsPrint(r) {
		return New(ErrCodeInvalidRune, "fill rune must be printable, got %q", r)
	}
	if runewidth.RuneWidth(r) != 1 {
		return New(ErrCodeInvalidRune, "fill rune must occupy a single cell, got %q", r)
	}
	return nil
}
