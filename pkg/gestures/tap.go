package gestures

// DefaultTapSlop is the maximum distance a pointer may travel between down
// and up and still count as a tap.
const DefaultTapSlop = 18.0

// TapGestureRecognizer recognizes a single tap made with a single pointer.
type TapGestureRecognizer struct {
	// OnTap is called when a tap completes.
	OnTap func()
	// Slop overrides DefaultTapSlop when positive.
	Slop float64

	tracking bool
	pointer  int64
	down     PointerEvent
}

// NewTapGestureRecognizer returns an idle tap recognizer.
func NewTapGestureRecognizer() *TapGestureRecognizer {
	return &TapGestureRecognizer{}
}

// AddPointer begins tracking a down event. A second pointer arriving while
// one is tracked abandons the tap.
func (r *TapGestureRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown {
		return
	}
	if r.tracking && event.PointerID != r.pointer {
		r.reset()
		return
	}
	r.tracking = true
	r.pointer = event.PointerID
	r.down = event
}

// HandleEvent completes or abandons the tracked tap.
func (r *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		if event.Position.Distance(r.down.Position) > r.slop() {
			r.reset()
		}
	case PointerPhaseUp:
		withinSlop := event.Position.Distance(r.down.Position) <= r.slop()
		r.reset()
		if withinSlop && r.OnTap != nil {
			r.OnTap()
		}
	case PointerPhaseCancel:
		r.reset()
	}
}

// Dispose stops tracking and drops the callback.
func (r *TapGestureRecognizer) Dispose() {
	r.reset()
	r.OnTap = nil
}

func (r *TapGestureRecognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTapSlop
}

func (r *TapGestureRecognizer) reset() {
	r.tracking = false
	r.down = PointerEvent{}
}
