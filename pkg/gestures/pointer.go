// Package gestures turns raw pointer events into tap gestures.
package gestures

import "github.com/pureui/highlight/pkg/graphics"

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is delivered when a finger touches the screen.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is delivered while a pressed finger moves.
	PointerPhaseMove
	// PointerPhaseUp is delivered when the finger lifts.
	PointerPhaseUp
	// PointerPhaseCancel is delivered when the platform takes the touch away.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single touch sample.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// TapDetails describes where a tap gesture happened.
type TapDetails struct {
	Position graphics.Offset
}
