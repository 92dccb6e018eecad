package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pureui/highlight/pkg/errors"
	"github.com/pureui/highlight/pkg/gestures"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/semantics"
	"github.com/pureui/highlight/pkg/textlayout"
)

const (
	terms  = "Read the Terms and Privacy Policy"
	glyphW = 7.0
	lineH  = 13.0
)

// at returns a point on the middle of the glyph at rune offset i on the
// first line of a 7x13 layout.
func at(i int) graphics.Offset {
	return graphics.Offset{X: float64(i)*glyphW + 3, Y: lineH / 2}
}

type recordingHandler struct {
	errs   []*errors.HighlightError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.HighlightError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)     { h.panics = append(h.panics, err) }

func recordErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	old := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func newController(t *testing.T, text string, width float64) (*Controller, *textlayout.FaceLayout) {
	t.Helper()
	layout := textlayout.NewFaceLayout(nil, text, width)
	c := New(layout)
	require.NoError(t, c.SetText(text))
	return c, layout
}

type tapCounts struct {
	terms, privacy, plain int
}

func termsController(t *testing.T) (*Controller, *tapCounts) {
	t.Helper()
	c, _ := newController(t, terms, 0)
	counts := &tapCounts{}
	n, err := c.AddSpanBySubstring("Terms", Link{OnTap: func() { counts.terms++ }})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = c.AddSpanBySubstring("Privacy Policy", Link{
		NormalColor: graphics.ColorLink,
		ActiveColor: graphics.ColorLinkPressed,
		OnTap:       func() { counts.privacy++ },
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	c.OnPlainTap = func() { counts.plain++ }
	return c, counts
}

func tap(c *Controller, p graphics.Offset) {
	c.TapDown(p)
	c.TapUp()
}

func TestTermsAndPrivacyExample(t *testing.T) {
	c, counts := termsController(t)

	tap(c, at(10)) // "e" of Terms
	assert.Equal(t, tapCounts{terms: 1}, *counts)

	tap(c, at(29)) // "l" of Policy
	assert.Equal(t, tapCounts{terms: 1, privacy: 1}, *counts)

	tap(c, at(2)) // "a" of Read
	assert.Equal(t, tapCounts{terms: 1, privacy: 1, plain: 1}, *counts)

	tap(c, graphics.Offset{X: 500, Y: 5}) // past the end of the line
	assert.Equal(t, tapCounts{terms: 1, privacy: 1, plain: 2}, *counts)
}

func TestAddSpanBySubstringCountsNonOverlapping(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target string
		want   []TextRange
	}{
		{"single", terms, "Terms", []TextRange{{9, 14}}},
		{"repeated", "a link, another link", "link", []TextRange{{2, 6}, {16, 20}}},
		{"non-overlapping scan", "aaaa", "aa", []TextRange{{0, 2}, {2, 4}}},
		{"odd overlap", "aaa", "aa", []TextRange{{0, 2}}},
		{"whole text", "Terms", "Terms", []TextRange{{0, 5}}},
		{"rune offsets", "阅读《用户协议》和《隐私政策》", "《隐私政策》", []TextRange{{9, 15}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController(t, tt.text, 0)
			n, err := c.AddSpanBySubstring(tt.target, Link{})
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			var got []TextRange
			for _, s := range c.Spans() {
				got = append(got, s.Range)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddSpanBySubstringIsCaseSensitive(t *testing.T) {
	c, _ := newController(t, terms, 0)
	_, err := c.AddSpanBySubstring("terms", Link{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoMatch)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.Equal(t, 0, c.Len())
}

func TestAddSpanBySubstringRejectsEmptyTarget(t *testing.T) {
	c, _ := newController(t, terms, 0)
	n, err := c.AddSpanBySubstring("", Link{})
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, errors.ErrEmptyTarget)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
}

func TestAddSpanByRangeValidation(t *testing.T) {
	tests := []struct {
		name string
		r    TextRange
		ok   bool
	}{
		{"whole text", TextRange{0, 33}, true},
		{"single rune", TextRange{5, 6}, true},
		{"negative start", TextRange{-1, 4}, false},
		{"end past text", TextRange{30, 34}, false},
		{"empty", TextRange{4, 4}, false},
		{"inverted", TextRange{6, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController(t, terms, 0)
			err := c.AddSpanByRange(tt.r, Link{})
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, 1, c.Len())
				return
			}
			assert.ErrorIs(t, err, errors.ErrRangeOutOfBounds)
			assert.True(t, errors.IsKind(err, errors.KindValidation))
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestRegistrationBeforeTextIsReported(t *testing.T) {
	h := recordErrors(t)
	c := New(textlayout.NewFaceLayout(nil, "", 0))

	_, err := c.AddSpanBySubstring("Terms", Link{})
	assert.ErrorIs(t, err, errors.ErrNoMatch)
	err = c.AddSpanByRange(TextRange{0, 1}, Link{})
	assert.ErrorIs(t, err, errors.ErrRangeOutOfBounds)

	require.Len(t, h.errs, 2)
	for _, e := range h.errs {
		assert.Equal(t, errors.KindPrecondition, e.Kind)
		assert.ErrorIs(t, e, errors.ErrTextUnset)
	}
}

func TestSetTextRequiresClear(t *testing.T) {
	c, counts := termsController(t)

	err := c.SetText("Something else")
	assert.ErrorIs(t, err, errors.ErrSpansRegistered)
	assert.True(t, errors.IsKind(err, errors.KindPrecondition))
	assert.Equal(t, terms, c.Text())
	assert.NoError(t, c.SetText(terms), "setting the same text is allowed")

	c.ClearSpans()
	require.NoError(t, c.SetText("Something else"))
	assert.Equal(t, "Something else", c.Text())
	assert.Equal(t, tapCounts{}, *counts)
}

func TestClearSpansFallsThroughToPlainTap(t *testing.T) {
	c, counts := termsController(t)
	c.ClearSpans()
	c.ClearSpans() // idempotent

	tap(c, at(10))
	tap(c, at(29))
	assert.Equal(t, tapCounts{plain: 2}, *counts)
	assert.Empty(t, c.Spans())
	assert.Empty(t, c.AccessibilityElements())
}

func TestClearSpansWithoutPlainTapIsNoop(t *testing.T) {
	c, counts := termsController(t)
	c.OnPlainTap = nil
	c.ClearSpans()
	tap(c, at(10))
	assert.Equal(t, tapCounts{}, *counts)
}

func TestOverlapLaterRegisteredWins(t *testing.T) {
	c, _ := newController(t, terms, 0)
	var first, second int
	require.NoError(t, c.AddSpanByRange(TextRange{9, 33}, Link{OnTap: func() { first++ }}))
	require.NoError(t, c.AddSpanByRange(TextRange{19, 26}, Link{OnTap: func() { second++ }}))

	tap(c, at(20)) // inside both
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	tap(c, at(10)) // only the first
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	idx, ok := c.SpanAtOffset(19)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestCallbackFiresOncePerUpNeverOnCancel(t *testing.T) {
	c, counts := termsController(t)

	assert.True(t, c.TapDown(at(10)))
	pressed, ok := c.Pressed()
	require.True(t, ok)
	assert.Equal(t, 0, pressed)
	assert.Equal(t, 0, counts.terms, "nothing fires on touch-down")

	c.TapUp()
	c.TapUp() // a stray second up fires nothing
	assert.Equal(t, 1, counts.terms)

	c.TapDown(at(10))
	c.TapCancel()
	c.TapUp()
	assert.Equal(t, 1, counts.terms)
	_, ok = c.Pressed()
	assert.False(t, ok)
}

func TestSlidingOffSpanDisarmsPress(t *testing.T) {
	c, counts := termsController(t)

	c.TapDown(at(10))
	c.TapMove(at(12)) // still within Terms
	_, ok := c.Pressed()
	require.True(t, ok)

	c.TapMove(at(3)) // onto "Read"
	_, ok = c.Pressed()
	assert.False(t, ok)
	c.TapUp()
	assert.Equal(t, tapCounts{}, *counts, "neither the span nor plain tap fires")
}

func TestHandlePointerFollowsFirstPointer(t *testing.T) {
	c, counts := termsController(t)
	ev := func(id int64, phase gestures.PointerPhase, p graphics.Offset) gestures.PointerEvent {
		return gestures.PointerEvent{PointerID: id, Phase: phase, Position: p}
	}

	c.HandlePointer(ev(1, gestures.PointerPhaseDown, at(29)))
	c.HandlePointer(ev(2, gestures.PointerPhaseDown, at(10)))
	c.HandlePointer(ev(2, gestures.PointerPhaseUp, at(10)))
	assert.Equal(t, tapCounts{}, *counts)

	c.HandlePointer(ev(1, gestures.PointerPhaseMove, at(30)))
	c.HandlePointer(ev(1, gestures.PointerPhaseUp, at(30)))
	assert.Equal(t, tapCounts{privacy: 1}, *counts)

	c.HandlePointer(ev(3, gestures.PointerPhaseDown, at(10)))
	c.HandlePointer(ev(3, gestures.PointerPhaseCancel, at(10)))
	assert.Equal(t, tapCounts{privacy: 1}, *counts)
}

func TestPressOutsideSpanNeverPressesSpan(t *testing.T) {
	c, _ := termsController(t)
	assert.False(t, c.TapDown(at(2)))
	c.TapMove(at(10))
	_, ok := c.Pressed()
	assert.False(t, ok, "no span transitions when the press began outside every span")
	c.TapCancel()
}

func TestColorAtFollowsPressState(t *testing.T) {
	c, _ := termsController(t)
	base := graphics.ColorBlack

	assert.Equal(t, base, c.ColorAt(0, base))
	assert.Equal(t, base, c.ColorAt(10, base), "Terms has no normal color and inherits the label's")
	assert.Equal(t, graphics.ColorLink, c.ColorAt(20, base))

	c.TapDown(at(20))
	assert.Equal(t, graphics.ColorLinkPressed, c.ColorAt(20, base))
	assert.Equal(t, base, c.ColorAt(10, base))
	c.TapCancel()
	assert.Equal(t, graphics.ColorLink, c.ColorAt(20, base))
}

func TestActiveColorDefaultsToNormal(t *testing.T) {
	c, _ := newController(t, terms, 0)
	_, err := c.AddSpanBySubstring("Terms", Link{NormalColor: graphics.ColorRed})
	require.NoError(t, err)
	c.TapDown(at(10))
	assert.Equal(t, graphics.ColorRed, c.ColorAt(10, graphics.ColorBlack))
}

func TestStyledTextRuns(t *testing.T) {
	c, _ := termsController(t)
	c.spans[0].NormalColor = graphics.ColorGreen

	runs := graphics.FlattenSpans(c.StyledText(graphics.SpanStyle{Color: graphics.ColorBlack}), graphics.SpanStyle{})
	want := []graphics.StyledRun{
		{Text: "Read the ", Start: 0, End: 9, Style: graphics.SpanStyle{Color: graphics.ColorBlack}},
		{Text: "Terms", Start: 9, End: 14, Style: graphics.SpanStyle{Color: graphics.ColorGreen}},
		{Text: " and ", Start: 14, End: 19, Style: graphics.SpanStyle{Color: graphics.ColorBlack}},
		{Text: "Privacy Policy", Start: 19, End: 33, Style: graphics.SpanStyle{Color: graphics.ColorLink}},
	}
	assert.Equal(t, want, runs)
	assert.Equal(t, terms, c.StyledText(graphics.SpanStyle{}).PlainText())
}

func TestRefreshAccessibilityGeometry(t *testing.T) {
	c, layout := newController(t, terms, 0)
	_, err := c.AddSpanBySubstring("Terms", Link{})
	require.NoError(t, err)
	_, err = c.AddSpanBySubstring("Privacy Policy", Link{})
	require.NoError(t, err)

	c.RefreshAccessibilityGeometry(graphics.RectFromLTWH(10, 100, 300, 13))
	nodes := c.AccessibilityElements()
	require.Len(t, nodes, 2)
	assert.Equal(t, "Terms", nodes[0].Properties.Label)
	assert.Equal(t, "Privacy Policy", nodes[1].Properties.Label)
	assert.True(t, nodes[0].Properties.Flags.Has(semantics.SemanticsIsLink))
	assert.True(t, nodes[0].Rect.ApproxEqual(graphics.RectFromLTWH(10+9*glyphW, 100, 5*glyphW, lineH)))

	// Move and narrow the label: Privacy Policy now wraps over two lines.
	layout.SetMaxWidth(100)
	c.RefreshAccessibilityGeometry(graphics.RectFromLTWH(0, 0, 100, 39))
	nodes = c.AccessibilityElements()
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].Rect.ApproxEqual(graphics.RectFromLTWH(9*glyphW, 0, 5*glyphW, lineH)))
	require.Len(t, nodes[1].Rects, 2)
	assert.True(t, nodes[1].Rects[0].ApproxEqual(graphics.RectFromLTWH(4*glyphW, lineH, 8*glyphW, lineH)))
	assert.True(t, nodes[1].Rects[1].ApproxEqual(graphics.RectFromLTWH(0, 2*lineH, 6*glyphW, lineH)))
	for _, n := range nodes {
		for _, r := range n.Rects {
			assert.GreaterOrEqual(t, r.Top, 0.0, "no rect from the old frame survives")
			assert.Less(t, r.Top, 100.0)
		}
	}
}

func TestAccessibilityTapActionFiresSpan(t *testing.T) {
	c, counts := termsController(t)
	c.RefreshAccessibilityGeometry(graphics.Rect{})
	nodes := c.AccessibilityElements()
	require.Len(t, nodes, 2)
	assert.Equal(t, c.Spans()[1].ID(), nodes[1].ID)

	assert.True(t, nodes[1].Actions.Perform(semantics.SemanticsActionTap, nil))
	assert.Equal(t, tapCounts{privacy: 1}, *counts)
}

func TestCallbackPanicIsRecovered(t *testing.T) {
	h := recordErrors(t)
	c, _ := newController(t, terms, 0)
	_, err := c.AddSpanBySubstring("Terms", Link{OnTap: func() { panic("boom") }})
	require.NoError(t, err)

	assert.NotPanics(t, func() { tap(c, at(10)) })
	require.Len(t, h.panics, 1)
	assert.Equal(t, "highlight.onTap", h.panics[0].Op)
	assert.Equal(t, "boom", h.panics[0].Value)
}

func TestStaleLayoutDegradesToNoHit(t *testing.T) {
	h := recordErrors(t)
	c, layout := newController(t, terms, 0)
	_, err := c.AddSpanBySubstring("Terms", Link{})
	require.NoError(t, err)
	layout.SetText("Completely different text that is long enough")

	idx, ok := c.SpanAt(at(10))
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	c.RefreshAccessibilityGeometry(graphics.Rect{})
	assert.Empty(t, c.AccessibilityElements())

	require.Len(t, h.errs, 1, "a stale layout is reported once")
	assert.Equal(t, errors.KindPrecondition, h.errs[0].Kind)
}

func TestTextRange(t *testing.T) {
	r := TextRange{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.True(t, r.Valid(5))
	assert.False(t, r.Valid(4))
	assert.Equal(t, "[2,5)", r.String())
}
