package gestures

import "math"

// DefaultTouchSlop is how far a pointer may travel, in logical pixels,
// before a tap turns into a drag and is cancelled.
const DefaultTouchSlop = 18.0

// TapGestureRecognizer recognizes a single-pointer tap. Only the first
// pointer to go down is tracked; others are ignored until it lifts.
type TapGestureRecognizer struct {
	// Slop overrides DefaultTouchSlop when positive.
	Slop float64

	OnTapDown   func(TapDetails)
	// OnTapMove reports moves of the tracked pointer that stay within slop.
	OnTapMove   func(TapDetails)
	OnTapUp     func(TapDetails)
	OnTap       func()
	OnTapCancel func()

	tracking bool
	pointer  int64
	origin   TapDetails
}

// NewTapGestureRecognizer creates a recognizer using DefaultTouchSlop.
func NewTapGestureRecognizer() *TapGestureRecognizer {
	return &TapGestureRecognizer{}
}

// AddPointer starts tracking a pointer-down event.
func (r *TapGestureRecognizer) AddPointer(event PointerEvent) {
	if r.tracking || event.Phase != PointerPhaseDown {
		return
	}
	r.tracking = true
	r.pointer = event.PointerID
	r.origin = TapDetails{Position: event.Position}
	if r.OnTapDown != nil {
		r.OnTapDown(r.origin)
	}
}

// HandleEvent processes move, up and cancel events for the tracked pointer.
func (r *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		dx := event.Position.X - r.origin.Position.X
		dy := event.Position.Y - r.origin.Position.Y
		if math.Hypot(dx, dy) > r.slop() {
			r.cancel()
			return
		}
		if r.OnTapMove != nil {
			r.OnTapMove(TapDetails{Position: event.Position})
		}
	case PointerPhaseUp:
		r.tracking = false
		if r.OnTapUp != nil {
			r.OnTapUp(TapDetails{Position: event.Position})
		}
		if r.OnTap != nil {
			r.OnTap()
		}
	case PointerPhaseCancel:
		r.cancel()
	}
}

// IsTracking reports whether a tap is in progress.
func (r *TapGestureRecognizer) IsTracking() bool {
	return r.tracking
}

// Dispose drops any in-progress tap without firing callbacks.
func (r *TapGestureRecognizer) Dispose() {
	r.tracking = false
}

func (r *TapGestureRecognizer) cancel() {
	r.tracking = false
	if r.OnTapCancel != nil {
		r.OnTapCancel()
	}
}

func (r *TapGestureRecognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTouchSlop
}
