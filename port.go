package snapdragon

// GeometryPort reads and writes numeric element properties. Set is an
// instantaneous write; Animate transitions the property over durationSeconds
// using the named easing (an empty or unknown name falls back to linear).
type GeometryPort interface {
	Get(el Element, prop Property) float64
	Set(el Element, prop Property, value float64)
	Animate(el Element, prop Property, value float64, durationSeconds float64, easing string)
}

// StagePort answers scene and document queries the engine needs: identifier
// resolution, drop-target and draggable enumeration, region/container lookup,
// and the interaction lock.
//
// Origin returns the stage-absolute position of el's coordinate origin (the
// absolute position of its parent), so that parent-relative Left/Top values
// can be compared against absolute region bounds.
type StagePort interface {
	Identifier(el Element) string
	ByIdentifier(id string) Element
	Draggables(scope Element) []Element
	DropTargets() []Element
	Region(selector string) Element
	Container(el Element) Element
	Root() Element
	Origin(el Element) (x, y float64)
	SetLocked(el Element, locked bool)
	Locked(el Element) bool
	Attr(el Element, name string) string
}

// Scheduler defers a task by the given number of seconds. Tasks are
// fire-and-forget: the engine never cancels them and never depends on them
// for the correctness of synchronous reads within the same gesture.
// A delay of 0 means "next tick".
type Scheduler interface {
	Defer(seconds float64, fn func())
}

// Host is the full contract a document host must provide.
// The built-in Stage implements it; tests and embedders may supply their own.
type Host interface {
	GeometryPort
	StagePort
	Scheduler
}
