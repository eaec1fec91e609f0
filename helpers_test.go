package snapdragon

import (
	"bytes"
	"testing"
)

// newTestDoc builds a 640x480 stage attached to a fresh engine.
func newTestDoc(t *testing.T) (*Stage, *Document) {
	t.Helper()
	st := NewStage(640, 480)
	eng := New()
	return st, eng.Attach("test", st)
}

// addBox adds an identified box to parent. An empty id leaves the node
// unidentified.
func addBox(parent *StageNode, name, id string, x, y, w, h float64) *StageNode {
	n := NewStageNode(name)
	n.X, n.Y = x, y
	n.Width, n.Height = w, h
	if id != "" {
		n.SetAttr(AttrID, id)
	}
	parent.AddChild(n)
	return n
}

// addTarget adds a drop-target box to parent.
func addTarget(parent *StageNode, name string, x, y, w, h float64) *StageNode {
	n := addBox(parent, name, "", x, y, w, h)
	n.SetAttr(AttrDropTarget, "true")
	return n
}

// captureWarnings redirects diagnostic output into a buffer for the
// duration of the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := warnWriter
	warnWriter = &buf
	t.Cleanup(func() { warnWriter = old })
	return &buf
}

// drag runs a full start/move.../end cycle through the document.
func drag(doc *Document, el Element, from Vec2, to ...Vec2) {
	doc.Handle(el, &Event{Phase: PhaseStart, X: from.X, Y: from.Y})
	for _, p := range to {
		doc.Handle(el, &Event{Phase: PhaseMove, X: p.X, Y: p.Y})
	}
	last := from
	if len(to) > 0 {
		last = to[len(to)-1]
	}
	doc.Handle(el, &Event{Phase: PhaseEnd, X: last.X, Y: last.Y})
}
