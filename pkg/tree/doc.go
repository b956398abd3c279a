// Package tree renders ASCII-art Christmas trees.
//
// # Overview
//
// The renderer is a pure function from a non-negative height to a block of
// text: height triangle rows followed by a fixed two-row trunk. Row i
// (0-indexed) carries height-i-1 leading spaces and 2*i+1 branch runes, so
// every row is centered on the trunk column without an explicit centering
// step. The widest row is the last triangle row, at 2*height-1 cells.
//
// Basic usage:
//
//	text, err := tree.Render(10)
//
// yields the twelve-row reference tree. Runes are configurable:
//
//	text, err := tree.Render(5, tree.WithBranchRune('#'), tree.WithTrunkRune('I'))
//
// # Height zero
//
// Height zero is accepted and renders the bare trunk: two rows, each a
// single trunk rune with no indentation. Negative heights are rejected
// with an INVALID_HEIGHT error.
//
// # Purity
//
// Render and Lines are deterministic and side-effect free; all
// configuration lives in a per-call option struct. Displaying the result
// is the caller's concern, see the sink subpackage.
package tree
