package snapdragon

// Element is an opaque handle to a host stage element. The engine never
// inspects it directly; all reads and writes go through the Host ports.
// With the built-in stage this is always a *StageNode.
type Element = any

// Vec2 is a 2D vector used for positions, offsets, and deltas.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// OverlapArea returns the area of the intersection of r and other,
// or 0 if they do not overlap.
func (r Rect) OverlapArea(other Rect) float64 {
	w := min(r.X+r.Width, other.X+other.Width) - max(r.X, other.X)
	h := min(r.Y+r.Height, other.Y+other.Height) - max(r.Y, other.Y)
	return max(0, w) * max(0, h)
}

// Phase identifies the stage of a continuous pointer interaction.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// Property names a numeric element property readable and writable through
// the GeometryPort.
type Property uint8

const (
	Left Property = iota
	Top
	Width
	Height
	StackOrder
)

// Event is a single phase-tagged pointer event fed to Document.Handle.
// X and Y are the pointer position in stage coordinates. DropTarget is
// populated by the engine on PhaseEnd and PhaseCancel before the drop
// callback runs (nil when nothing overlaps).
type Event struct {
	Phase      Phase
	X, Y       float64
	DropTarget Element
}
