package snapdragon

// sessionLinger is how long (in scheduler seconds) a finished session
// remains readable after end/cancel, so that drop callbacks and a same-tick
// SnapBack still observe baseline data.
const sessionLinger = 0.05

// stackBase seeds each document's stacking counter. Values handed out on
// successive drag starts are strictly increasing from here.
const stackBase = 1000

// Session is the per-identifier record of one drag cycle. Created at
// PhaseStart, read and updated during PhaseMove, marked inactive at
// PhaseEnd/PhaseCancel, and removed from its document after sessionLinger.
type Session struct {
	ID string

	// Baseline geometry, re-read live at every drag start so repeated
	// cycles never accumulate drift.
	BaseLeft, BaseTop float64
	BaseStack         float64

	// Pointer position at PhaseStart; move deltas are measured from here.
	DownX, DownY float64

	// Active is true only between PhaseStart and PhaseEnd/PhaseCancel.
	Active bool
}

// document is the per-document registry: sessions, constraint specs, and
// handler sets by drag identifier, plus the stacking counter. One exists per
// attached document identity and persists across scene transitions until
// reset.
type document struct {
	id       string
	host     Host
	sessions map[string]*Session
	specs    map[string]*Constraint
	handlers map[string]*HandlerSet
	stackTop float64

	// sink receives every dispatched DragEvent. It lives here rather than
	// on the public Document handle so all handles for the same identity
	// share it and re-attaching does not drop it.
	sink EventSink
}

func newDocument(id string, host Host) *document {
	return &document{
		id:       id,
		host:     host,
		sessions: make(map[string]*Session),
		specs:    make(map[string]*Constraint),
		handlers: make(map[string]*HandlerSet),
		stackTop: stackBase,
	}
}

// session returns the (possibly inactive, pre-cleanup) session for id,
// or nil.
func (d *document) session(id string) *Session {
	return d.sessions[id]
}

// scheduleCleanup removes s from the document after the linger delay.
// If a new drag start has replaced the map entry in the meantime, the
// deferred delete leaves the fresh session alone.
func (d *document) scheduleCleanup(s *Session) {
	d.host.Defer(sessionLinger, func() {
		if d.sessions[s.ID] == s {
			delete(d.sessions, s.ID)
		}
	})
}

// clear drops all sessions, constraint specs, and handler sets.
func (d *document) clear() {
	d.sessions = make(map[string]*Session)
	d.specs = make(map[string]*Constraint)
	d.handlers = make(map[string]*HandlerSet)
}
