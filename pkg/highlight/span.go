package highlight

import (
	"fmt"

	"github.com/pureui/highlight/pkg/graphics"
)

// TextRange is a half-open interval [Start, End) of rune offsets.
type TextRange struct {
	Start int
	End   int
}

// Len returns the number of runes covered.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset falls inside the range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Valid reports whether the range is non-empty and fits a text of length n.
func (r TextRange) Valid(n int) bool {
	return r.Start >= 0 && r.End <= n && r.Start < r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Link holds the styling and callback for a span. Every field is optional.
type Link struct {
	// NormalColor paints the span at rest. Unset inherits the label color.
	NormalColor graphics.Color
	// ActiveColor paints the span while it is pressed. Unset keeps NormalColor.
	ActiveColor graphics.Color
	// OnTap runs when a press that began on the span is released.
	OnTap func()
}

// LinkSpan is a registered clickable range.
type LinkSpan struct {
	Range TextRange
	Link

	id int64
}

// ID returns the identifier used for the span's accessibility element.
func (s LinkSpan) ID() int64 {
	return s.id
}

// color resolves the span's paint color against the label color.
func (s LinkSpan) color(pressed bool, base graphics.Color) graphics.Color {
	normal := s.NormalColor.Or(base)
	if pressed {
		return s.ActiveColor.Or(normal)
	}
	return normal
}
