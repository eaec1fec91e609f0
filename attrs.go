package snapdragon

import "strconv"

// Declarative attribute names. Hosts expose these through StagePort.Attr;
// the built-in Stage stores them in each node's attribute map.
const (
	AttrID         = "drag-id"     // drag identifier
	AttrDropTarget = "drop-target" // "true" marks a drop target
	AttrMinX       = "drag-min-x"
	AttrMaxX       = "drag-max-x"
	AttrMinY       = "drag-min-y"
	AttrMaxY       = "drag-max-y"
	AttrAxis       = "drag-axis"      // "x" or "y"
	AttrWithin     = "drag-within"    // "parent" or a region selector
	AttrAutoSnap   = "drag-auto-snap" // "true"/"false", overrides Config.AutoSnap
)

// LoadDeclarations scans every identified element within scope (the scene
// root when nil) for declarative constraint attributes and stores the
// resulting specs. Elements whose effective auto-snap is enabled (the
// per-element attribute when present, Config.AutoSnap otherwise) are
// snapped into compliance on the next scheduler tick, after their geometry
// has settled. Malformed attribute values warn and are skipped individually.
func (dc *Document) LoadDeclarations(scope Element) {
	h := dc.doc.host
	if scope == nil {
		scope = h.Root()
	}
	for _, el := range h.Draggables(scope) {
		id := h.Identifier(el)
		c, ok := parseDeclaration(h, el, id)
		if !ok {
			continue
		}
		c.AutoSnap = dc.eng.cfg.AutoSnap
		switch h.Attr(el, AttrAutoSnap) {
		case "true":
			c.AutoSnap = true
		case "false":
			c.AutoSnap = false
		}
		spec := c
		dc.doc.specs[id] = &spec
		if spec.AutoSnap {
			el := el
			h.Defer(0, func() { dc.AutoSnap(el) })
		}
	}
}

// parseDeclaration builds a Constraint from el's attributes. ok is false
// when no constraint attribute is present at all.
func parseDeclaration(h Host, el Element, id string) (Constraint, bool) {
	var c Constraint
	var found bool

	bound := func(attr string) *float64 {
		raw := h.Attr(el, attr)
		if raw == "" {
			return nil
		}
		found = true
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warnf("element %q: %s=%q is not a number; ignored", id, attr, raw)
			return nil
		}
		return &v
	}
	c.MinX = bound(AttrMinX)
	c.MaxX = bound(AttrMaxX)
	c.MinY = bound(AttrMinY)
	c.MaxY = bound(AttrMaxY)

	switch axis := h.Attr(el, AttrAxis); axis {
	case "":
	case "x":
		c.Axis = AxisX
		found = true
	case "y":
		c.Axis = AxisY
		found = true
	default:
		warnf("element %q: %s=%q is not x or y; ignored", id, AttrAxis, axis)
	}

	if within := h.Attr(el, AttrWithin); within != "" {
		c.Within = within
		found = true
	}

	return c, found
}
