// Package textlayout defines what a highlight label needs from a text layout
// engine and provides a simple engine over golang.org/x/image/font faces.
//
// Offsets are rune offsets into the laid-out text. Points and rectangles are
// in label-local coordinates with the origin at the top-left of the first line.
package textlayout

import "github.com/pureui/highlight/pkg/graphics"

// Layout is the text layout contract consumed by the highlight controller.
type Layout interface {
	// Text returns the text that was laid out.
	Text() string
	// Length returns the number of runes in Text.
	Length() int
	// OffsetAt returns the rune offset of the glyph under p, or false if p
	// does not fall on a glyph.
	OffsetAt(p graphics.Offset) (int, bool)
	// RangeRects returns one rectangle per visual line covered by the rune
	// range [start, end). Lines the range does not touch are omitted.
	RangeRects(start, end int) []graphics.Rect
}
