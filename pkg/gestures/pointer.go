// Package gestures turns raw pointer events into gestures.
package gestures

import "github.com/go-drift/radiobutton/pkg/graphics"

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
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

// PointerEvent is a single touch or mouse sample in local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// Recognizer consumes pointer events and fires gesture callbacks.
type Recognizer interface {
	// AddPointer starts tracking a pointer from its down event.
	AddPointer(event PointerEvent)
	// HandleEvent processes subsequent events for tracked pointers.
	HandleEvent(event PointerEvent)
	// Dispose stops tracking and releases callbacks.
	Dispose()
}
