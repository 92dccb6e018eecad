package graphics

import "strings"

// TextDecoration selects a single text decoration line. The zero value means
// "inherit from parent."
type TextDecoration int

const (
	textDecorationUnset TextDecoration = 0 // zero value = inherit

	// TextDecorationNone explicitly removes decoration, overriding any
	// value inherited from a parent span.
	TextDecorationNone TextDecoration = 1

	// TextDecorationUnderline draws a line below the text baseline.
	TextDecorationUnderline TextDecoration = 2
)

// SpanStyle describes the visual style for a text span. During span tree
// flattening, zero-valued fields inherit from the parent span's resolved style.
type SpanStyle struct {
	Color           Color
	Decoration      TextDecoration
	BackgroundColor Color
}

// mergeFrom copies parent field values into s for any field that is zero-valued
// in s. Non-zero fields in s are left untouched (child overrides parent).
func (s SpanStyle) mergeFrom(parent SpanStyle) SpanStyle {
	if s.Color == 0 {
		s.Color = parent.Color
	}
	if s.Decoration == textDecorationUnset {
		s.Decoration = parent.Decoration
	}
	if s.BackgroundColor == 0 {
		s.BackgroundColor = parent.BackgroundColor
	}
	return s
}

// TextSpan represents a node in a tree of styled text. A span renders its own
// Text first, then its Children in order. Child spans inherit style fields
// from their parent for any field left at its zero value.
type TextSpan struct {
	Text     string
	Style    SpanStyle
	Children []TextSpan
}

// PlainText returns the concatenation of all text in the span tree.
func (s TextSpan) PlainText() string {
	if len(s.Children) == 0 {
		return s.Text
	}
	var b strings.Builder
	b.WriteString(s.Text)
	for _, child := range s.Children {
		b.WriteString(child.PlainText())
	}
	return b.String()
}

// Span creates a leaf TextSpan with the given text.
func Span(text string) TextSpan {
	return TextSpan{Text: text}
}

// Spans creates a container TextSpan whose children are the provided spans.
func Spans(children ...TextSpan) TextSpan {
	return TextSpan{Children: children}
}

// Color returns a copy with the specified text color.
func (s TextSpan) Color(c Color) TextSpan {
	s.Style.Color = c
	return s
}

// Underline returns a copy with an underline decoration.
func (s TextSpan) Underline() TextSpan {
	s.Style.Decoration = TextDecorationUnderline
	return s
}

// NoDecoration returns a copy with decoration explicitly set to none.
func (s TextSpan) NoDecoration() TextSpan {
	s.Style.Decoration = TextDecorationNone
	return s
}

// Background returns a copy with the specified background color.
func (s TextSpan) Background(c Color) TextSpan {
	s.Style.BackgroundColor = c
	return s
}

// StyledRun is a resolved run of text produced by flattening a TextSpan tree.
// Start and End are rune offsets into the tree's plain text.
type StyledRun struct {
	Text  string
	Start int
	End   int
	Style SpanStyle
}

// FlattenSpans walks a TextSpan tree depth-first, collecting leaf runs with
// fully resolved styles. baseStyle acts as the lowest-priority parent.
func FlattenSpans(span TextSpan, baseStyle SpanStyle) []StyledRun {
	var runs []StyledRun
	offset := 0
	flattenInto(span, baseStyle, &offset, &runs)
	return runs
}

func flattenInto(span TextSpan, parentStyle SpanStyle, offset *int, runs *[]StyledRun) {
	resolved := span.Style.mergeFrom(parentStyle)
	if span.Text != "" {
		n := len([]rune(span.Text))
		*runs = append(*runs, StyledRun{
			Text:  span.Text,
			Start: *offset,
			End:   *offset + n,
			Style: resolved,
		})
		*offset += n
	}
	for _, child := range span.Children {
		flattenInto(child, resolved, offset, runs)
	}
}
