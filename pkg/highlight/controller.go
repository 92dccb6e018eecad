package highlight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pureui/highlight/pkg/errors"
	"github.com/pureui/highlight/pkg/gestures"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/semantics"
	"github.com/pureui/highlight/pkg/textlayout"
)

// noSpan marks a press that began on plain text.
const noSpan = -1

// pressState tracks the touch currently in progress.
type pressState struct {
	active  bool
	pointer int64
	span    int
	// inert is set when the finger slides off the pressed span; the
	// gesture then finishes without firing anything.
	inert bool
}

// Controller tracks link spans over a label's text and resolves taps.
type Controller struct {
	// OnPlainTap runs when a tap lands on text outside every span.
	OnPlainTap func()

	host    textlayout.Layout
	text    string
	textSet bool
	length  int
	spans   []LinkSpan
	nextID  int64
	nodes   []*semantics.SemanticsNode
	press   pressState

	staleReported bool
}

// New creates a controller that hit-tests through host.
func New(host textlayout.Layout) *Controller {
	return &Controller{host: host, press: pressState{span: noSpan}}
}

// SetText sets the base text spans are registered against. It fails with a
// precondition error while spans are registered; call ClearSpans first.
func (c *Controller) SetText(text string) error {
	if len(c.spans) > 0 && text != c.text {
		return errors.Precondition("highlight.SetText", errors.ErrSpansRegistered)
	}
	c.text = text
	c.textSet = true
	c.length = utf8.RuneCountInString(text)
	c.staleReported = false
	return nil
}

// Text returns the base text.
func (c *Controller) Text() string {
	return c.text
}

// Len returns the number of registered spans.
func (c *Controller) Len() int {
	return len(c.spans)
}

// Spans returns a copy of the registered spans in registration order.
func (c *Controller) Spans() []LinkSpan {
	out := make([]LinkSpan, len(c.spans))
	copy(out, c.spans)
	return out
}

// AddSpanBySubstring registers a span for every occurrence of target in the
// text, scanning left to right without overlap. Matching is exact and case
// sensitive. It returns the number of spans added.
//
// The text must be set first. Registering against unset text is reported to
// the error handler and finds nothing.
func (c *Controller) AddSpanBySubstring(target string, link Link) (int, error) {
	const op = "highlight.AddSpanBySubstring"
	if target == "" {
		return 0, errors.Validation(op, errors.ErrEmptyTarget, "")
	}
	c.checkTextSet(op)

	targetLen := utf8.RuneCountInString(target)
	added := 0
	pos, runePos := 0, 0
	for {
		i := strings.Index(c.text[pos:], target)
		if i < 0 {
			break
		}
		runePos += utf8.RuneCountInString(c.text[pos : pos+i])
		c.add(TextRange{Start: runePos, End: runePos + targetLen}, link)
		added++
		runePos += targetLen
		pos += i + len(target)
	}
	if added == 0 {
		return 0, errors.Validation(op, errors.ErrNoMatch, fmt.Sprintf("target=%q", target))
	}
	return added, nil
}

// AddSpanByRange registers exactly one span over r. It fails when
// r.Start < 0, r.End exceeds the text length, or r.Start >= r.End.
func (c *Controller) AddSpanByRange(r TextRange, link Link) error {
	const op = "highlight.AddSpanByRange"
	c.checkTextSet(op)
	if !r.Valid(c.length) {
		return errors.Validation(op, errors.ErrRangeOutOfBounds, fmt.Sprintf("%s len=%d", r, c.length))
	}
	c.add(r, link)
	return nil
}

// ClearSpans removes all spans, their accessibility elements and any press
// in progress. Calling it with nothing registered is a no-op.
func (c *Controller) ClearSpans() {
	c.spans = nil
	c.nodes = nil
	c.press = pressState{span: noSpan}
}

func (c *Controller) add(r TextRange, link Link) {
	c.nextID++
	c.spans = append(c.spans, LinkSpan{Range: r, Link: link, id: c.nextID})
}

func (c *Controller) checkTextSet(op string) {
	if !c.textSet {
		errors.Report(errors.Precondition(op, errors.ErrTextUnset))
	}
}

// RefreshAccessibilityGeometry rebuilds one accessibility element per span
// from the host's current layout. frame is the label's on-screen frame; line
// rectangles are translated by its origin. Spans that are not laid out (for
// example truncated away) get no element.
func (c *Controller) RefreshAccessibilityGeometry(frame graphics.Rect) {
	c.nodes = c.nodes[:0]
	if !c.inSync() {
		return
	}
	runes := []rune(c.text)
	for i, span := range c.spans {
		rects := c.host.RangeRects(span.Range.Start, span.Range.End)
		if len(rects) == 0 {
			continue
		}
		for j := range rects {
			rects[j] = rects[j].Translate(frame.Left, frame.Top)
		}
		actions := semantics.NewSemanticsActions()
		idx := i
		actions.SetHandler(semantics.SemanticsActionTap, func(any) { c.fire(idx) })
		props := semantics.SemanticsProperties{
			Label: string(runes[span.Range.Start:span.Range.End]),
			Flags: semantics.SemanticsFlags(0).
				Set(semantics.SemanticsIsLink).
				Set(semantics.SemanticsIsFocusable),
		}
		c.nodes = append(c.nodes, semantics.NewSemanticsNode(span.id, rects, props, actions))
	}
}

// AccessibilityElements returns the elements built by the last refresh.
func (c *Controller) AccessibilityElements() []*semantics.SemanticsNode {
	out := make([]*semantics.SemanticsNode, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// SpanAt returns the index of the span under p, in label-local coordinates.
// When spans overlap, the most recently registered one wins.
func (c *Controller) SpanAt(p graphics.Offset) (int, bool) {
	offset, ok := c.offsetAt(p)
	if !ok {
		return noSpan, false
	}
	return c.SpanAtOffset(offset)
}

// SpanAtOffset returns the index of the topmost span covering a rune offset.
func (c *Controller) SpanAtOffset(offset int) (int, bool) {
	for i := len(c.spans) - 1; i >= 0; i-- {
		if c.spans[i].Range.Contains(offset) {
			return i, true
		}
	}
	return noSpan, false
}

// offsetAt maps p to a rune offset, missing whenever the host has been
// laid out with text other than the registered base text.
func (c *Controller) offsetAt(p graphics.Offset) (int, bool) {
	if !c.inSync() {
		return 0, false
	}
	return c.host.OffsetAt(p)
}

func (c *Controller) inSync() bool {
	if c.host == nil {
		return false
	}
	if c.host.Text() == c.text {
		return true
	}
	if !c.staleReported {
		c.staleReported = true
		errors.Report(errors.Precondition("highlight.HitTest",
			fmt.Errorf("layout text differs from base text: %w", errors.ErrSpansRegistered)))
	}
	return false
}

// Pressed returns the index of the span currently held down.
func (c *Controller) Pressed() (int, bool) {
	if !c.press.active || c.press.inert || c.press.span == noSpan {
		return noSpan, false
	}
	return c.press.span, true
}

// TapDown starts a press at p. It reports whether the press landed on a span.
// A second TapDown while a press is active is ignored.
func (c *Controller) TapDown(p graphics.Offset) bool {
	return c.tapDown(0, p)
}

func (c *Controller) tapDown(pointer int64, p graphics.Offset) bool {
	if c.press.active {
		return false
	}
	idx, hit := c.SpanAt(p)
	c.press = pressState{active: true, pointer: pointer, span: idx}
	return hit
}

// TapMove updates the press. Sliding off the pressed span returns it to its
// normal color and the press will not fire.
func (c *Controller) TapMove(p graphics.Offset) {
	if !c.press.active || c.press.inert || c.press.span == noSpan {
		return
	}
	offset, ok := c.offsetAt(p)
	if !ok || c.press.span >= len(c.spans) || !c.spans[c.press.span].Range.Contains(offset) {
		c.press.inert = true
	}
}

// TapUp finishes the press, firing the pressed span's callback or, for a
// press that began on plain text, OnPlainTap.
func (c *Controller) TapUp() {
	press := c.press
	c.press = pressState{span: noSpan}
	if !press.active || press.inert {
		return
	}
	if press.span == noSpan {
		c.firePlain()
		return
	}
	c.fire(press.span)
}

// TapCancel abandons the press without firing anything.
func (c *Controller) TapCancel() {
	c.press = pressState{span: noSpan}
}

// HandlePointer drives the press state machine from raw pointer events in
// label-local coordinates. Only the first pointer down is followed.
func (c *Controller) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		c.tapDown(event.PointerID, event.Position)
		return
	}
	if !c.press.active || event.PointerID != c.press.pointer {
		return
	}
	switch event.Phase {
	case gestures.PointerPhaseMove:
		c.TapMove(event.Position)
	case gestures.PointerPhaseUp:
		c.TapUp()
	case gestures.PointerPhaseCancel:
		c.TapCancel()
	}
}

func (c *Controller) fire(idx int) {
	if idx < 0 || idx >= len(c.spans) {
		return
	}
	onTap := c.spans[idx].OnTap
	if onTap == nil {
		return
	}
	defer errors.Recover("highlight.onTap")
	onTap()
}

func (c *Controller) firePlain() {
	if c.OnPlainTap == nil {
		return
	}
	defer errors.Recover("highlight.onPlainTap")
	c.OnPlainTap()
}

// ColorAt returns the paint color for the rune at offset given the label's
// own color: the topmost covering span's active color while it is pressed,
// its normal color otherwise, and base outside every span.
func (c *Controller) ColorAt(offset int, base graphics.Color) graphics.Color {
	idx, ok := c.SpanAtOffset(offset)
	if !ok {
		return base
	}
	pressed, isPressed := c.Pressed()
	return c.spans[idx].color(isPressed && pressed == idx, base)
}

// StyledText splits the text into runs of uniform color, ready for a
// renderer. base supplies the label's color and decoration.
func (c *Controller) StyledText(base graphics.SpanStyle) graphics.TextSpan {
	root := graphics.TextSpan{Style: base}
	runes := []rune(c.text)
	if len(runes) == 0 {
		return root
	}
	start := 0
	current := c.ColorAt(0, base.Color)
	for i := 1; i <= len(runes); i++ {
		var next graphics.Color
		if i < len(runes) {
			next = c.ColorAt(i, base.Color)
			if next == current {
				continue
			}
		}
		root.Children = append(root.Children, graphics.Span(string(runes[start:i])).Color(current))
		start = i
		current = next
	}
	return root
}
