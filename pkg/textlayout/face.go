package textlayout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pureui/highlight/pkg/graphics"
)

// Line is one visual line produced by FaceLayout.
type Line struct {
	// Start and End are the rune range of the line, including any trailing
	// spaces and newline.
	Start int
	End   int
	// Top is the y coordinate of the line box.
	Top float64
	// Width is the advance width of the line.
	Width float64

	// xs[i] is the x of rune Start+i; xs[len] is the line's right edge.
	xs []float64
}

// FaceLayout lays text out left-aligned with greedy word wrapping, measuring
// glyph advances and kerning from a font.Face. It wraps at spaces, breaks
// words that are wider than the line, and honors '\n'.
type FaceLayout struct {
	face       font.Face
	text       string
	runes      []rune
	maxWidth   float64
	lineHeight float64
	ascent     float64
	lines      []Line
	size       graphics.Size
}

// NewFaceLayout lays out text with face at maxWidth. A nil face selects
// basicfont.Face7x13. A maxWidth of zero or less disables wrapping.
func NewFaceLayout(face font.Face, text string, maxWidth float64) *FaceLayout {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	l := &FaceLayout{
		face:       face,
		lineHeight: fixedToFloat(m.Height),
		ascent:     fixedToFloat(m.Ascent),
	}
	l.text = text
	l.runes = []rune(text)
	l.maxWidth = maxWidth
	l.layout()
	return l
}

// SetText replaces the text and lays it out again.
func (l *FaceLayout) SetText(text string) {
	l.text = text
	l.runes = []rune(text)
	l.layout()
}

// SetMaxWidth changes the wrapping width and lays the text out again.
func (l *FaceLayout) SetMaxWidth(maxWidth float64) {
	if maxWidth == l.maxWidth {
		return
	}
	l.maxWidth = maxWidth
	l.layout()
}

// Text returns the text as last laid out.
func (l *FaceLayout) Text() string { return l.text }

// Length returns the text length in runes.
func (l *FaceLayout) Length() int { return len(l.runes) }

// Lines returns the laid-out lines. The slice stays valid across relayouts.
func (l *FaceLayout) Lines() []Line { return l.lines }

// Size returns the bounding size of the laid-out text.
func (l *FaceLayout) Size() graphics.Size { return l.size }

// LineHeight returns the height of a single line box.
func (l *FaceLayout) LineHeight() float64 { return l.lineHeight }

// Ascent returns the distance from a line's top to its baseline.
func (l *FaceLayout) Ascent() float64 { return l.ascent }

// OffsetAt returns the rune under p, in layout coordinates. Points above,
// below or beside every glyph box miss.
func (l *FaceLayout) OffsetAt(p graphics.Offset) (int, bool) {
	if p.Y < 0 || l.lineHeight <= 0 {
		return 0, false
	}
	idx := int(p.Y / l.lineHeight)
	if idx >= len(l.lines) {
		return 0, false
	}
	line := l.lines[idx]
	for i := 0; i < len(line.xs)-1; i++ {
		if p.X >= line.xs[i] && p.X < line.xs[i+1] {
			return line.Start + i, true
		}
	}
	return 0, false
}

// RangeRects returns one box per line covered by the rune range
// [start, end), clamped to the text.
func (l *FaceLayout) RangeRects(start, end int) []graphics.Rect {
	start = max(start, 0)
	end = min(end, len(l.runes))
	if start >= end {
		return nil
	}
	var rects []graphics.Rect
	for _, line := range l.lines {
		s := max(start, line.Start)
		e := min(end, line.End)
		if s >= e {
			continue
		}
		left := line.xs[s-line.Start]
		right := line.xs[e-line.Start]
		if right <= left {
			continue
		}
		rects = append(rects, graphics.Rect{
			Left:   left,
			Top:    line.Top,
			Right:  right,
			Bottom: line.Top + l.lineHeight,
		})
	}
	return rects
}

func (l *FaceLayout) layout() {
	l.lines = nil
	l.size = graphics.Size{}
	top := 0.0
	for start := 0; start < len(l.runes); {
		end := l.nextBreak(start)
		line := l.measure(start, end)
		line.Top = top
		l.lines = append(l.lines, line)
		l.size.Width = max(l.size.Width, line.Width)
		top += l.lineHeight
		start = end
	}
	l.size.Height = top
}

// nextBreak returns the exclusive end of the line starting at start.
// Trailing spaces stay on the line even when they overflow it.
func (l *FaceLayout) nextBreak(start int) int {
	x := 0.0
	lastSpace := -1
	prev := rune(-1)
	for i := start; i < len(l.runes); i++ {
		r := l.runes[i]
		if r == '\n' {
			return i + 1
		}
		adv := l.advance(prev, r)
		if l.maxWidth > 0 && i > start && r != ' ' && x+adv > l.maxWidth {
			if lastSpace >= start {
				return lastSpace + 1
			}
			return i
		}
		if r == ' ' {
			lastSpace = i
		}
		x += adv
		prev = r
	}
	return len(l.runes)
}

func (l *FaceLayout) measure(start, end int) Line {
	xs := make([]float64, 0, end-start+1)
	x := 0.0
	prev := rune(-1)
	for i := start; i < end; i++ {
		xs = append(xs, x)
		r := l.runes[i]
		x += l.advance(prev, r)
		prev = r
	}
	xs = append(xs, x)
	return Line{Start: start, End: end, Width: x, xs: xs}
}

func (l *FaceLayout) advance(prev, r rune) float64 {
	if r == '\n' {
		return 0
	}
	adv, ok := l.face.GlyphAdvance(r)
	if !ok {
		adv, _ = l.face.GlyphAdvance('?')
	}
	if prev >= 0 {
		adv += l.face.Kern(prev, r)
	}
	return fixedToFloat(adv)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
