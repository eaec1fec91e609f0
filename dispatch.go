package snapdragon

// DragEvent is the context passed to interaction callbacks and emitted to an
// optional EventSink. Data carries the HandlerSet's user-defined payload
// untouched, so callbacks can reach sibling fields of their own registration
// (a "correct target" marker, scoring state, and so on).
type DragEvent struct {
	Element Element
	ID      string
	Phase   Phase

	// Pointer position in stage coordinates.
	X, Y float64

	// Pointer position at drag start, and the delta from it.
	StartX, StartY float64
	DeltaX, DeltaY float64

	// Best overlapping drop target; nil except on PhaseEnd/PhaseCancel, and
	// nil there too when nothing overlaps.
	DropTarget Element

	Data any
}

// HandlerSet groups the optional callbacks for one drag identifier.
// Every field may be nil; absent callbacks are simply skipped.
type HandlerSet struct {
	OnStart    func(DragEvent)
	OnProgress func(DragEvent)
	OnDrop     func(DragEvent)

	// Data is user-defined and passed through on every DragEvent.
	Data any
}

// EventSink receives every DragEvent the document dispatches, regardless of
// whether a HandlerSet is registered. Used by the ecs bridge; nil by default.
type EventSink interface {
	EmitDragEvent(DragEvent)
}

// dispatch invokes the phase-appropriate callback for ev.ID, if one is
// registered, and forwards the event to the document's sink. Missing handler
// sets and missing callbacks are not errors.
func (d *document) dispatch(ev DragEvent) {
	if hs := d.handlers[ev.ID]; hs != nil {
		ev.Data = hs.Data
		var fn func(DragEvent)
		switch ev.Phase {
		case PhaseStart:
			fn = hs.OnStart
		case PhaseMove:
			fn = hs.OnProgress
		case PhaseEnd, PhaseCancel:
			fn = hs.OnDrop
		}
		if fn != nil {
			fn(ev)
		}
	}
	if d.sink != nil {
		d.sink.EmitDragEvent(ev)
	}
}
