package snapdragon

// WithinParent is the containment selector that resolves to the nearest
// enclosing logical container of the dragged element (falling back to the
// scene root).
const WithinParent = "parent"

// Axis restricts movement to a single axis during a drag.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX         // horizontal movement only; Top pinned to the baseline
	AxisY         // vertical movement only; Left pinned to the baseline
)

// Constraint limits where an element may be positioned. All fields are
// optional: nil bounds impose no limit, AxisNone leaves both axes free, an
// empty Within skips containment. A stored Constraint persists until
// replaced or the document is reset.
type Constraint struct {
	MinX, MaxX *float64
	MinY, MaxY *float64

	Axis Axis

	// Within is either WithinParent or a region selector resolved against
	// the active scene.
	Within string

	// AutoSnap repositions the element into compliance as soon as the
	// constraint is set (and again on scene activation).
	AutoSnap bool
}

// Limit returns a pointer to v, for populating optional Constraint bounds.
func Limit(v float64) *float64 { return &v }

// constraintEnv carries the resolved surroundings a constraint is evaluated
// against. The engine assembles it; resolvePosition stays a pure function.
type constraintEnv struct {
	// Axis-lock baseline: the session's baseline position during a drag, or
	// the element's current position for auto-snap.
	BaseLeft, BaseTop float64

	// Element dimensions.
	Width, Height float64

	// Stage-absolute position of the element's coordinate origin, used to
	// translate absolute region bounds into the element's own space.
	OriginX, OriginY float64

	// Parent is the stage-absolute box of the resolved logical container for
	// Within == WithinParent; Region is the absolute box for any other
	// selector. Whichever the Within value calls for must be non-nil or the
	// containment stage is skipped (the engine warns when a selector failed
	// to resolve).
	Parent *Rect
	Region *Rect
}

// resolvePosition applies a constraint to a proposed position and returns
// the final one. Stages run in a fixed order (absolute bounds, axis lock,
// containment) because each later stage must see the already-clamped
// output of the earlier ones. Pure: no geometry reads or writes, identical
// inputs yield identical outputs.
func resolvePosition(left, top float64, c *Constraint, env constraintEnv) (float64, float64) {
	if c == nil {
		return left, top
	}

	// Stage 1: absolute boundary clamp.
	if c.MinX != nil && left < *c.MinX {
		left = *c.MinX
	}
	if c.MaxX != nil && left > *c.MaxX {
		left = *c.MaxX
	}
	if c.MinY != nil && top < *c.MinY {
		top = *c.MinY
	}
	if c.MaxY != nil && top > *c.MaxY {
		top = *c.MaxY
	}

	// Stage 2: axis lock re-pins the orthogonal coordinate to the baseline.
	switch c.Axis {
	case AxisX:
		top = env.BaseTop
	case AxisY:
		left = env.BaseLeft
	}

	// Stage 3: containment clamp. Both boxes are stage-absolute, so the
	// clamp happens in absolute space and the result translates back into
	// the element's own coordinate space. This keeps the bound correct even
	// when the element's direct parent is a plain group nested inside the
	// logical container.
	box := env.Region
	if c.Within == WithinParent {
		box = env.Parent
	}
	if c.Within != "" && box != nil {
		absLeft := clamp(left+env.OriginX, box.X, box.X+box.Width-env.Width)
		absTop := clamp(top+env.OriginY, box.Y, box.Y+box.Height-env.Height)
		left = absLeft - env.OriginX
		top = absTop - env.OriginY
	}

	return left, top
}

// clamp limits v to [lo, hi]. When hi < lo (element larger than its bound),
// the lower edge wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
