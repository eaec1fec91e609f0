package snapdragon

// Engine owns the per-document registries and the shared configuration.
// Create one at startup and keep it wherever your host lifecycle lives;
// there is no package-level instance.
type Engine struct {
	cfg  Config
	docs map[string]*document
}

// New creates an engine with DefaultConfig.
func New() *Engine {
	return &Engine{
		cfg:  DefaultConfig(),
		docs: make(map[string]*document),
	}
}

// Config returns the current engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig replaces the engine configuration. All attached documents see
// the change immediately.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
}

// Attach returns the Document for the given document identity, creating an
// empty registry on first use. The registry persists across scene
// transitions within that document; re-attaching with a fresh host (after a
// host-side reload) rebinds the ports without losing registered state.
func (e *Engine) Attach(identity string, host Host) *Document {
	d, ok := e.docs[identity]
	if !ok {
		d = newDocument(identity, host)
		e.docs[identity] = d
	} else {
		d.host = host
	}
	return &Document{eng: e, doc: d}
}

// Document is the public handle for one attached document: the gesture
// entry point plus the constraint, handler, transition, and lifecycle APIs.
type Document struct {
	eng *Engine
	doc *document
}

// SetEventSink attaches an optional sink that receives every DragEvent the
// document dispatches (see the ecs subpackage for a Donburi-backed one).
// The sink is shared by all handles for the same document identity and
// survives re-attaching.
func (dc *Document) SetEventSink(sink EventSink) {
	dc.doc.sink = sink
}

// --- Gesture state machine ---

// Handle is the single entry point for phase-tagged pointer events. The
// element must carry a drag identifier; events for unidentified elements
// are warned about and dropped. A move or end without a preceding start is
// ignored, as is a second end/cancel for the same identifier.
//
// On PhaseEnd and PhaseCancel, ev.DropTarget is populated with the best
// overlapping drop target (nil if none) before the drop callback runs.
func (dc *Document) Handle(el Element, ev *Event) {
	id := dc.doc.host.Identifier(el)
	if id == "" {
		warnf("%s event for element without a drag identifier; ignored", ev.Phase)
		return
	}
	switch ev.Phase {
	case PhaseStart:
		dc.start(el, id, ev)
	case PhaseMove:
		dc.move(el, id, ev)
	case PhaseEnd, PhaseCancel:
		dc.finish(el, id, ev)
	}
}

func (dc *Document) start(el Element, id string, ev *Event) {
	d := dc.doc
	if d.host.Locked(el) {
		return
	}

	// Baseline geometry is re-read live on every start so repeated drag
	// cycles, and out-of-band repositioning between them, never
	// accumulate drift.
	s := &Session{
		ID:        id,
		BaseLeft:  d.host.Get(el, Left),
		BaseTop:   d.host.Get(el, Top),
		BaseStack: d.host.Get(el, StackOrder),
		DownX:     ev.X,
		DownY:     ev.Y,
		Active:    true,
	}
	// Overwrites any lingering finished session; its deferred delete is
	// pointer-guarded and will leave this one alone.
	d.sessions[id] = s

	if dc.eng.cfg.BringToFront {
		d.stackTop++
		d.host.Set(el, StackOrder, d.stackTop)
	}

	d.dispatch(DragEvent{
		Element: el, ID: id, Phase: PhaseStart,
		X: ev.X, Y: ev.Y, StartX: ev.X, StartY: ev.Y,
	})
}

func (dc *Document) move(el Element, id string, ev *Event) {
	d := dc.doc
	s := d.session(id)
	if s == nil || !s.Active {
		return
	}

	left := s.BaseLeft + ev.X - s.DownX
	top := s.BaseTop + ev.Y - s.DownY
	c := d.specs[id]
	left, top = resolvePosition(left, top, c, dc.constraintEnv(el, c, s.BaseLeft, s.BaseTop))

	d.host.Set(el, Left, left)
	d.host.Set(el, Top, top)

	d.dispatch(DragEvent{
		Element: el, ID: id, Phase: PhaseMove,
		X: ev.X, Y: ev.Y,
		StartX: s.DownX, StartY: s.DownY,
		DeltaX: ev.X - s.DownX, DeltaY: ev.Y - s.DownY,
	})
}

func (dc *Document) finish(el Element, id string, ev *Event) {
	d := dc.doc
	s := d.session(id)
	if s == nil || !s.Active {
		return
	}
	s.Active = false

	ev.DropTarget = bestDropTarget(dc.absBox(el), el, d.host.DropTargets(), dc.absBox)

	d.dispatch(DragEvent{
		Element: el, ID: id, Phase: ev.Phase,
		X: ev.X, Y: ev.Y,
		StartX: s.DownX, StartY: s.DownY,
		DeltaX: ev.X - s.DownX, DeltaY: ev.Y - s.DownY,
		DropTarget: ev.DropTarget,
	})

	d.scheduleCleanup(s)
}

// constraintEnv resolves the surroundings a constraint needs: element size,
// coordinate origin, and (when containment is requested) the container or
// region box. An unresolvable region warns and leaves Region nil, which
// skips only the containment stage.
func (dc *Document) constraintEnv(el Element, c *Constraint, baseLeft, baseTop float64) constraintEnv {
	h := dc.doc.host
	env := constraintEnv{
		BaseLeft: baseLeft, BaseTop: baseTop,
		Width:  h.Get(el, Width),
		Height: h.Get(el, Height),
	}
	env.OriginX, env.OriginY = h.Origin(el)

	if c == nil || c.Within == "" {
		return env
	}
	if c.Within == WithinParent {
		container := h.Container(el)
		if container == nil {
			container = h.Root()
		}
		box := dc.absBox(container)
		env.Parent = &box
		return env
	}
	region := h.Region(c.Within)
	if region == nil {
		warnf("containment region %q not found in the active scene; containment skipped", c.Within)
		return env
	}
	box := dc.absBox(region)
	env.Region = &box
	return env
}

// absBox returns el's stage-absolute bounding box.
func (dc *Document) absBox(el Element) Rect {
	h := dc.doc.host
	ox, oy := h.Origin(el)
	return Rect{
		X:      ox + h.Get(el, Left),
		Y:      oy + h.Get(el, Top),
		Width:  h.Get(el, Width),
		Height: h.Get(el, Height),
	}
}

// --- Constraint and handler APIs ---

// targetRef is a constraint target resolved to a canonical element +
// identifier pair at the API boundary.
type targetRef struct {
	el Element
	id string
}

// SetConstraints stores a constraint spec for one or more targets. target
// may be an element handle, a drag identifier string, or a slice of either
// ([]string, []Element, or mixed []any). Identifier lookups that find no
// element in the active scene are warned about and skipped. When the spec
// has AutoSnap set, each target is repositioned into compliance on the next
// scheduler tick, once its geometry has settled.
func (dc *Document) SetConstraints(target any, c Constraint) {
	for _, ref := range dc.resolveTargets(target) {
		spec := c
		dc.doc.specs[ref.id] = &spec
		if spec.AutoSnap {
			el := ref.el
			dc.doc.host.Defer(0, func() { dc.AutoSnap(el) })
		}
	}
}

// Constraint returns the stored spec for a drag identifier.
func (dc *Document) Constraint(id string) (Constraint, bool) {
	c := dc.doc.specs[id]
	if c == nil {
		return Constraint{}, false
	}
	return *c, true
}

// resolveTargets canonicalizes the mixed element/identifier/slice input
// accepted by SetConstraints.
func (dc *Document) resolveTargets(target any) []targetRef {
	h := dc.doc.host
	switch v := target.(type) {
	case nil:
		return nil
	case string:
		el := h.ByIdentifier(v)
		if el == nil {
			warnf("no element with drag identifier %q in the active scene; constraint skipped", v)
			return nil
		}
		return []targetRef{{el: el, id: v}}
	case []string:
		var refs []targetRef
		for _, id := range v {
			refs = append(refs, dc.resolveTargets(id)...)
		}
		return refs
	case []Element:
		var refs []targetRef
		for _, t := range v {
			refs = append(refs, dc.resolveTargets(t)...)
		}
		return refs
	default:
		id := h.Identifier(v)
		if id == "" {
			warnf("constraint target element has no drag identifier; skipped")
			return nil
		}
		return []targetRef{{el: v, id: id}}
	}
}

// SetInteractionMap replaces the document's handler map. Keys are drag
// identifiers; nil entries are dropped.
func (dc *Document) SetInteractionMap(handlers map[string]*HandlerSet) {
	m := make(map[string]*HandlerSet, len(handlers))
	for id, hs := range handlers {
		if hs != nil {
			m[id] = hs
		}
	}
	dc.doc.handlers = m
}

// Session returns a copy of the session record for a drag identifier.
// Finished sessions remain readable for a short grace period after
// end/cancel; afterwards ok is false.
func (dc *Document) Session(id string) (Session, bool) {
	s := dc.doc.session(id)
	if s == nil {
		return Session{}, false
	}
	return *s, true
}

// --- Lifecycle ---

// Reset clears all sessions, constraint specs, and handler sets for this
// document, and unlocks every element bearing a drag identifier within
// scope (the scene root when scope is nil). Use it for scene-unload hygiene
// or an explicit state reset.
func (dc *Document) Reset(scope Element) {
	h := dc.doc.host
	if scope == nil {
		scope = h.Root()
	}
	for _, el := range h.Draggables(scope) {
		h.SetLocked(el, false)
	}
	dc.doc.clear()
}

// SceneReady loads declarative constraints for the scene about to display
// and schedules auto-snaps for every in-scope element whose stored spec has
// AutoSnap set, including specs registered programmatically before the scene
// activated. Call it from the host's scene-activation hook.
func (dc *Document) SceneReady(scope Element) {
	dc.LoadDeclarations(scope)

	h := dc.doc.host
	if scope == nil {
		scope = h.Root()
	}
	for _, el := range h.Draggables(scope) {
		c := dc.doc.specs[h.Identifier(el)]
		if c != nil && c.AutoSnap {
			el := el
			h.Defer(0, func() { dc.AutoSnap(el) })
		}
	}
}

// SceneUnloaded performs the configured unload hygiene. Call it from the
// host's scene-unload hook.
func (dc *Document) SceneUnloaded(scope Element) {
	if dc.eng.cfg.ResetOnSceneUnload {
		dc.Reset(scope)
	}
}
