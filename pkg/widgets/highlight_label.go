package widgets

import (
	"golang.org/x/image/font"

	"github.com/pureui/highlight/pkg/gestures"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/highlight"
	"github.com/pureui/highlight/pkg/semantics"
	"github.com/pureui/highlight/pkg/textlayout"
)

// HighlightLabel is a plain-text label with clickable link spans.
//
// Set the text first, then register links:
//
//	label := widgets.NewHighlightLabel(nil, "Read the Terms and Privacy Policy")
//	label.SetFrame(graphics.RectFromLTWH(16, 200, 300, 40))
//	label.AddHighlightText("Terms", highlight.Link{OnTap: openTerms})
//	label.AddHighlightText("Privacy Policy", highlight.Link{
//	    NormalColor: graphics.ColorLink,
//	    ActiveColor: graphics.ColorLinkPressed,
//	    OnTap:       openPrivacy,
//	})
//
// Pointer events are delivered in screen coordinates through HandlePointer.
// Changing the text drops every registered link.
type HighlightLabel struct {
	frame      graphics.Rect
	color      graphics.Color
	layout     *textlayout.FaceLayout
	controller *highlight.Controller
	tap        *gestures.TapGestureRecognizer
	semantics  *semantics.SemanticsOwner
}

// NewHighlightLabel creates a label drawing text with face. A nil face
// selects the bundled 7x13 bitmap face.
func NewHighlightLabel(face font.Face, text string) *HighlightLabel {
	l := &HighlightLabel{
		color:     graphics.ColorBlack,
		layout:    textlayout.NewFaceLayout(face, text, 0),
		semantics: semantics.NewSemanticsOwner(),
	}
	l.controller = highlight.New(l.layout)
	// A fresh controller has no spans, so SetText cannot fail here.
	_ = l.controller.SetText(text)

	l.tap = gestures.NewTapGestureRecognizer()
	l.tap.OnTapDown = func(d gestures.TapDetails) { l.controller.TapDown(l.toLocal(d.Position)) }
	l.tap.OnTapMove = func(d gestures.TapDetails) { l.controller.TapMove(l.toLocal(d.Position)) }
	l.tap.OnTapUp = func(gestures.TapDetails) { l.controller.TapUp() }
	l.tap.OnTapCancel = l.controller.TapCancel
	return l
}

// Frame returns the label's frame in screen coordinates.
func (l *HighlightLabel) Frame() graphics.Rect {
	return l.frame
}

// SetFrame moves or resizes the label. The text wraps at the new width and
// accessibility elements follow the new position.
func (l *HighlightLabel) SetFrame(frame graphics.Rect) {
	l.frame = frame
	l.layout.SetMaxWidth(frame.Width())
	l.RefreshAccessibility()
}

// SizeToFit resizes the label's height to fit its wrapped text.
func (l *HighlightLabel) SizeToFit() {
	graphics.SetHeight(l, l.layout.Size().Height)
}

// Text returns the label's text.
func (l *HighlightLabel) Text() string {
	return l.controller.Text()
}

// SetText replaces the text and removes every link registered against the
// old text.
func (l *HighlightLabel) SetText(text string) {
	l.controller.ClearSpans()
	l.layout.SetText(text)
	_ = l.controller.SetText(text)
	l.RefreshAccessibility()
}

// Color returns the color of plain text.
func (l *HighlightLabel) Color() graphics.Color {
	return l.color
}

// SetColor sets the color of plain text and of links without a normal color.
func (l *HighlightLabel) SetColor(c graphics.Color) {
	l.color = c
}

// SetOnPlainTap sets the callback for taps outside every link.
func (l *HighlightLabel) SetOnPlainTap(fn func()) {
	l.controller.OnPlainTap = fn
}

// AddHighlightText turns every occurrence of text into a link and returns
// how many were found.
func (l *HighlightLabel) AddHighlightText(text string, link highlight.Link) (int, error) {
	n, err := l.controller.AddSpanBySubstring(text, link)
	if err != nil {
		return 0, err
	}
	l.RefreshAccessibility()
	return n, nil
}

// AddHighlightRange turns the rune range r into a link.
func (l *HighlightLabel) AddHighlightRange(r highlight.TextRange, link highlight.Link) error {
	if err := l.controller.AddSpanByRange(r, link); err != nil {
		return err
	}
	l.RefreshAccessibility()
	return nil
}

// ClearHighlights removes every link.
func (l *HighlightLabel) ClearHighlights() {
	l.controller.ClearSpans()
	l.RefreshAccessibility()
}

// RefreshAccessibility recomputes link element frames. The label calls it
// after its own frame or text changes; call it after moving an ancestor.
func (l *HighlightLabel) RefreshAccessibility() {
	l.controller.RefreshAccessibilityGeometry(l.frame)
	l.semantics.Replace(l.controller.AccessibilityElements())
}

// Semantics returns the owner holding the label's accessibility elements.
func (l *HighlightLabel) Semantics() *semantics.SemanticsOwner {
	return l.semantics
}

// Controller exposes the span controller backing the label.
func (l *HighlightLabel) Controller() *highlight.Controller {
	return l.controller
}

// Layout exposes the label's text layout.
func (l *HighlightLabel) Layout() *textlayout.FaceLayout {
	return l.layout
}

// HandlePointer processes a pointer event in screen coordinates. Only the
// first pointer down inside the frame is followed until it lifts.
func (l *HighlightLabel) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		if !l.frame.Contains(event.Position) {
			return
		}
		l.tap.AddPointer(event)
		return
	}
	l.tap.HandleEvent(event)
}

// StyledText returns the label text split into colored runs for painting.
func (l *HighlightLabel) StyledText() graphics.TextSpan {
	return l.controller.StyledText(graphics.SpanStyle{Color: l.color})
}

func (l *HighlightLabel) toLocal(p graphics.Offset) graphics.Offset {
	return p.Translate(-l.frame.Left, -l.frame.Top)
}

var _ graphics.Framer = (*HighlightLabel)(nil)
