package snapdragon

// SnapBack animates el back to its session's baseline position using the
// configured SnapBack duration and easing. With BringToFront enabled, the
// stacking value is animated back to its baseline as well. Reading a
// session that has already been cleaned up is a normal race inside the
// grace window, so a missing session is a silent no-op.
func (dc *Document) SnapBack(el Element) {
	h := dc.doc.host
	id := h.Identifier(el)
	if id == "" {
		warnf("snap-back target has no drag identifier; ignored")
		return
	}
	s := dc.doc.session(id)
	if s == nil {
		return
	}
	cfg := dc.eng.cfg
	h.Animate(el, Left, s.BaseLeft, cfg.SnapBackDuration, cfg.SnapBackEasing)
	h.Animate(el, Top, s.BaseTop, cfg.SnapBackDuration, cfg.SnapBackEasing)
	if cfg.BringToFront {
		h.Animate(el, StackOrder, s.BaseStack, cfg.SnapBackDuration, cfg.SnapBackEasing)
	}
}

// SnapTo animates el to destination's current position using the configured
// SnapTo duration and easing. destination is either an element handle or a
// region selector string resolved against the active scene; a selector that
// resolves to nothing warns and aborts the call. Stacking order is left
// untouched.
func (dc *Document) SnapTo(el Element, destination any) {
	h := dc.doc.host
	var dest Element
	switch v := destination.(type) {
	case nil:
		warnf("snap-to called with no destination; ignored")
		return
	case string:
		dest = h.Region(v)
		if dest == nil {
			warnf("snap-to destination %q not found in the active scene; ignored", v)
			return
		}
	default:
		dest = v
	}

	// Match absolute positions even when el and dest live under different
	// containers.
	dx, dy := h.Origin(dest)
	ox, oy := h.Origin(el)
	left := dx + h.Get(dest, Left) - ox
	top := dy + h.Get(dest, Top) - oy

	cfg := dc.eng.cfg
	h.Animate(el, Left, left, cfg.SnapToDuration, cfg.SnapToEasing)
	h.Animate(el, Top, top, cfg.SnapToDuration, cfg.SnapToEasing)
}

// AutoSnap immediately repositions el into compliance with its stored
// constraint spec, with no animation. The element's current position serves
// as both the proposed position and the axis-lock baseline, so applying
// AutoSnap twice in a row is idempotent. Any live session baseline is
// refreshed so a subsequent drag start measures deltas from the corrected
// position. No-op when el has no identifier or no stored constraint.
func (dc *Document) AutoSnap(el Element) {
	h := dc.doc.host
	id := h.Identifier(el)
	if id == "" {
		return
	}
	c := dc.doc.specs[id]
	if c == nil {
		return
	}

	left := h.Get(el, Left)
	top := h.Get(el, Top)
	rl, rt := resolvePosition(left, top, c, dc.constraintEnv(el, c, left, top))
	if rl == left && rt == top {
		return
	}
	h.Set(el, Left, rl)
	h.Set(el, Top, rt)
	if s := dc.doc.session(id); s != nil {
		s.BaseLeft = rl
		s.BaseTop = rt
	}
}

// Lock disables drag recognition for el and, transitively, its descendants.
func (dc *Document) Lock(el Element) {
	dc.setLocked(el, true, "lock")
}

// Unlock re-enables drag recognition for el.
func (dc *Document) Unlock(el Element) {
	dc.setLocked(el, false, "unlock")
}

func (dc *Document) setLocked(el Element, locked bool, op string) {
	h := dc.doc.host
	if h.Identifier(el) == "" {
		warnf("%s target has no drag identifier; ignored", op)
		return
	}
	h.SetLocked(el, locked)
}
