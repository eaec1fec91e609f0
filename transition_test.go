package snapdragon

import (
	"strings"
	"testing"
)

// --- SnapBack ---

func TestSnapBackReturnsToBaseline(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 100, 100, 50, 50)

	doc.Handle(el, &Event{Phase: PhaseStart, X: 110, Y: 110})
	doc.Handle(el, &Event{Phase: PhaseMove, X: 300, Y: 250})
	baseStack := 0.0 // pre-drag stacking value
	doc.Handle(el, &Event{Phase: PhaseEnd, X: 300, Y: 250})

	doc.SnapBack(el)
	if el.X == 100 {
		t.Error("snap-back should animate, not jump")
	}
	st.Update(0.1)
	if el.X == 100 || el.X == 290 {
		t.Errorf("mid-animation left = %v, expected between 290 and 100", el.X)
	}
	st.Update(0.3) // past the 0.25s default duration
	if el.X != 100 || el.Y != 100 {
		t.Errorf("final position = (%v, %v), want (100, 100)", el.X, el.Y)
	}
	if el.StackOrder != baseStack {
		t.Errorf("StackOrder = %v, want restored baseline %v", el.StackOrder, baseStack)
	}
}

func TestSnapBackAfterCleanupIsSilent(t *testing.T) {
	st, doc := newTestDoc(t)
	buf := captureWarnings(t)
	el := addBox(st.RootNode(), "a", "a", 100, 100, 50, 50)

	drag(doc, el, Vec2{X: 110, Y: 110}, Vec2{X: 200, Y: 110})
	st.Update(0.1) // session erased

	doc.SnapBack(el)
	st.Update(1)
	if el.X != 190 {
		t.Errorf("left = %v, stale snap-back should not move the element", el.X)
	}
	if buf.Len() != 0 {
		t.Errorf("stale snap-back should be silent, got %q", buf.String())
	}
}

func TestSnapBackWithoutIdentifierWarns(t *testing.T) {
	st, doc := newTestDoc(t)
	buf := captureWarnings(t)
	el := addBox(st.RootNode(), "anon", "", 0, 0, 10, 10)

	doc.SnapBack(el)
	if !strings.Contains(buf.String(), "snap-back") {
		t.Errorf("expected snap-back warning, got %q", buf.String())
	}
}

// --- SnapTo ---

func TestSnapToElement(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 0, 0, 50, 50)
	dest := addBox(st.RootNode(), "slot", "", 300, 200, 50, 50)

	doc.SnapTo(el, dest)
	st.Update(0.3)
	if el.X != 300 || el.Y != 200 {
		t.Errorf("position = (%v, %v), want (300, 200)", el.X, el.Y)
	}
}

func TestSnapToSelector(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 0, 0, 50, 50)
	addBox(st.RootNode(), "slot", "", 120, 80, 50, 50)

	doc.SnapTo(el, "slot")
	st.Update(0.3)
	if el.X != 120 || el.Y != 80 {
		t.Errorf("position = (%v, %v), want (120, 80)", el.X, el.Y)
	}
}

func TestSnapToAcrossContainers(t *testing.T) {
	st, doc := newTestDoc(t)
	tray := NewStageNode("tray")
	tray.X, tray.Y = 100, 100
	st.RootNode().AddChild(tray)
	el := addBox(tray, "a", "a", 0, 0, 50, 50)
	addBox(st.RootNode(), "slot", "", 300, 200, 50, 50)

	doc.SnapTo(el, "slot")
	st.Update(0.3)
	// Local position compensates for the tray's offset so the element
	// lands at the slot's absolute position.
	if el.X != 200 || el.Y != 100 {
		t.Errorf("local position = (%v, %v), want (200, 100)", el.X, el.Y)
	}
}

func TestSnapToUnresolvedSelectorWarns(t *testing.T) {
	st, doc := newTestDoc(t)
	buf := captureWarnings(t)
	el := addBox(st.RootNode(), "a", "a", 40, 40, 50, 50)

	doc.SnapTo(el, "nowhere")
	st.Update(1)
	if el.X != 40 || el.Y != 40 {
		t.Error("unresolved snap-to destination must not move the element")
	}
	if !strings.Contains(buf.String(), "nowhere") {
		t.Errorf("expected warning naming the selector, got %q", buf.String())
	}
}

func TestSnapToLeavesStackingAlone(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 0, 0, 50, 50)
	el.StackOrder = 5
	dest := addBox(st.RootNode(), "slot", "", 100, 100, 50, 50)

	doc.SnapTo(el, dest)
	st.Update(1)
	if el.StackOrder != 5 {
		t.Errorf("StackOrder = %v, want 5 (untouched)", el.StackOrder)
	}
}

// --- AutoSnap ---

func TestAutoSnapCorrectsOutOfBounds(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 700, 300, 50, 50)
	doc.SetConstraints("a", Constraint{MaxX: Limit(500)})

	doc.AutoSnap(el)
	if el.X != 500 || el.Y != 300 {
		t.Errorf("position = (%v, %v), want (500, 300)", el.X, el.Y)
	}
}

func TestAutoSnapIsIdempotent(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 700, 300, 50, 50)
	doc.SetConstraints("a", Constraint{MaxX: Limit(500), Axis: AxisX})

	doc.AutoSnap(el)
	x, y := el.X, el.Y
	doc.AutoSnap(el)
	if el.X != x || el.Y != y {
		t.Errorf("second auto-snap moved (%v, %v) -> (%v, %v)", x, y, el.X, el.Y)
	}
}

func TestAutoSnapWithoutSpecIsNoOp(t *testing.T) {
	st, doc := newTestDoc(t)
	buf := captureWarnings(t)
	el := addBox(st.RootNode(), "a", "a", 700, 300, 50, 50)

	doc.AutoSnap(el)
	if el.X != 700 {
		t.Error("auto-snap without a stored constraint moved the element")
	}
	if buf.Len() != 0 {
		t.Errorf("auto-snap without a spec should be silent, got %q", buf.String())
	}
}

func TestAutoSnapRefreshesLiveBaseline(t *testing.T) {
	st, doc := newTestDoc(t)
	el := addBox(st.RootNode(), "a", "a", 100, 100, 50, 50)
	doc.SetConstraints("a", Constraint{MinX: Limit(200)})

	doc.Handle(el, &Event{Phase: PhaseStart, X: 110, Y: 110})
	doc.AutoSnap(el) // corrects to left 200 and refreshes the baseline

	s, _ := doc.Session("a")
	if s.BaseLeft != 200 {
		t.Fatalf("baseline = %v, want refreshed 200", s.BaseLeft)
	}
	doc.Handle(el, &Event{Phase: PhaseMove, X: 120, Y: 110})
	if el.X != 210 {
		t.Errorf("left = %v, want 210 (delta from refreshed baseline)", el.X)
	}
}
