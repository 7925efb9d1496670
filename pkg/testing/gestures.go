package testing

import (
	"sync/atomic"

	"github.com/go-drift/radiobutton/pkg/gestures"
	"github.com/go-drift/radiobutton/pkg/graphics"
)

// PointerHandler receives raw pointer events, e.g. a radio.Control.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID atomic.Int64

func allocPointerID() int64 {
	return nextPointerID.Add(1)
}

// TapAt simulates a tap at the given position with a fresh pointer.
func TapAt(h PointerHandler, pos graphics.Offset) {
	id := allocPointerID()
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: pos, Phase: gestures.PointerPhaseDown})
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: pos, Phase: gestures.PointerPhaseUp})
}

// DragFrom simulates a press at start, a move by delta and a release there.
func DragFrom(h PointerHandler, start, delta graphics.Offset) {
	id := allocPointerID()
	end := start.Translate(delta.X, delta.Y)
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: start, Phase: gestures.PointerPhaseDown})
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: end, Phase: gestures.PointerPhaseMove})
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: end, Phase: gestures.PointerPhaseUp})
}

// CancelAt simulates a press at pos that the platform then cancels.
func CancelAt(h PointerHandler, pos graphics.Offset) {
	id := allocPointerID()
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: pos, Phase: gestures.PointerPhaseDown})
	h.HandlePointer(gestures.PointerEvent{PointerID: id, Position: pos, Phase: gestures.PointerPhaseCancel})
}
