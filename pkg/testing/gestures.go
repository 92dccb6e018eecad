package testing

import (
	"fmt"

	"github.com/pureui/highlight/pkg/gestures"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/semantics"
)

// PointerTarget receives pointer events in screen coordinates.
type PointerTarget interface {
	HandlePointer(event gestures.PointerEvent)
}

// semanticsTarget is a target that also exposes accessibility elements.
type semanticsTarget interface {
	Semantics() *semantics.SemanticsOwner
}

// Tester sends simulated gestures to a target.
type Tester struct {
	target   PointerTarget
	pointers map[int64]graphics.Offset
	nextID   int64
}

// NewTester creates a tester for target.
func NewTester(target PointerTarget) *Tester {
	return &Tester{
		target:   target,
		pointers: make(map[int64]graphics.Offset),
	}
}

func (t *Tester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// Find returns the target's accessibility elements matched by finder. A
// target without accessibility elements matches nothing.
func (t *Tester) Find(finder Finder) FindResult {
	st, ok := t.target.(semanticsTarget)
	if !ok {
		return FindResult{}
	}
	var result FindResult
	for _, n := range st.Semantics().Nodes() {
		if finder.Matches(n) {
			result.Nodes = append(result.Nodes, n)
		}
	}
	return result
}

// Tap simulates a tap at the center of the first line box of the first
// element matched by finder.
func (t *Tester) Tap(finder Finder) error {
	node := t.Find(finder).First()
	if node == nil {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	if len(node.Rects) == 0 {
		return fmt.Errorf("Tap: element has no frame: %s", finder.Description())
	}
	t.TapAt(node.Rects[0].Center())
	return nil
}

// TapAt simulates a tap at pos.
func (t *Tester) TapAt(pos graphics.Offset) {
	id := t.allocPointerID()
	t.SendPointerDown(pos, id)
	t.SendPointerUp(pos, id)
}

// DragFrom simulates a press at start that moves by delta in steps moves
// before lifting.
func (t *Tester) DragFrom(start, delta graphics.Offset, steps int) {
	steps = max(steps, 1)
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		t.SendPointerMove(start.Translate(delta.X*frac, delta.Y*frac), id)
	}
	t.SendPointerUp(start.Translate(delta.X, delta.Y), id)
}

// PressAndCancel simulates a press at pos that the system cancels.
func (t *Tester) PressAndCancel(pos graphics.Offset) {
	id := t.allocPointerID()
	t.SendPointerDown(pos, id)
	t.SendPointerCancel(id)
}

// SendPointerDown sends a pointer-down event at pos.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int64) {
	t.pointers[pointerID] = pos
	t.send(pos, pointerID, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event at pos. Unknown pointers are
// ignored.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int64) {
	if _, ok := t.pointers[pointerID]; !ok {
		return
	}
	t.pointers[pointerID] = pos
	t.send(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos. Unknown pointers are
// ignored.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int64) {
	if _, ok := t.pointers[pointerID]; !ok {
		return
	}
	delete(t.pointers, pointerID)
	t.send(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel cancels a pointer at its last position. Unknown
// pointers are ignored.
func (t *Tester) SendPointerCancel(pointerID int64) {
	pos, ok := t.pointers[pointerID]
	if !ok {
		return
	}
	delete(t.pointers, pointerID)
	t.send(pos, pointerID, gestures.PointerPhaseCancel)
}

func (t *Tester) send(pos graphics.Offset, pointerID int64, phase gestures.PointerPhase) {
	t.target.HandlePointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     phase,
	})
}
