package snapdragon

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// Pointer converts Ebitengine mouse and touch state into phase-tagged
// gesture events for one Document on the built-in Stage. Call Update once
// per frame from your game loop, after Stage.Update. Tracks a single
// primary pointer: the mouse, or the first active touch.
type Pointer struct {
	doc      *Document
	stage    *Stage
	deadZone float64

	down    bool
	started bool
	target  Element
	downX   float64
	downY   float64
	lastX   float64
	lastY   float64

	inject       []injectedEvent
	prevTouchIDs []ebiten.TouchID
}

// injectedEvent is one synthetic pointer sample, consumed one per Update.
type injectedEvent struct {
	x, y    float64
	pressed bool
}

// NewPointer creates a pointer adapter feeding doc with events hit-tested
// against stage.
func NewPointer(doc *Document, stage *Stage) *Pointer {
	return &Pointer{doc: doc, stage: stage, deadZone: defaultDragDeadZone}
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a drag start.
func (p *Pointer) SetDragDeadZone(pixels float64) {
	p.deadZone = pixels
}

// Update samples input and advances the pointer state machine. Injected
// events take priority; while any are queued, real device input is not
// read at all, so injection-driven tests and scripts run headless.
func (p *Pointer) Update() {
	if p.processInjected() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		x, y = float64(tx), float64(ty)
		pressed = true
	}

	p.process(x, y, pressed)
}

// Cancel aborts any in-flight drag with a PhaseCancel event. Call it when
// the host loses focus or a scene transition interrupts the gesture.
func (p *Pointer) Cancel() {
	if p.started && p.target != nil {
		p.doc.Handle(p.target, &Event{Phase: PhaseCancel, X: p.lastX, Y: p.lastY})
	}
	p.down = false
	p.started = false
	p.target = nil
}

// process runs the press/drag/release state machine for one pointer sample.
func (p *Pointer) process(x, y float64, pressed bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.started = false
		p.downX, p.downY = x, y
		p.target = p.hitDraggable(x, y)

	case pressed && p.down:
		if p.target == nil {
			break
		}
		if !p.started {
			dx := x - p.downX
			dy := y - p.downY
			if math.Sqrt(dx*dx+dy*dy) > p.deadZone {
				p.started = true
				p.doc.Handle(p.target, &Event{Phase: PhaseStart, X: p.downX, Y: p.downY})
				p.doc.Handle(p.target, &Event{Phase: PhaseMove, X: x, Y: y})
			}
		} else if x != p.lastX || y != p.lastY {
			p.doc.Handle(p.target, &Event{Phase: PhaseMove, X: x, Y: y})
		}

	case !pressed && p.down:
		if p.started && p.target != nil {
			p.doc.Handle(p.target, &Event{Phase: PhaseEnd, X: x, Y: y})
		}
		p.down = false
		p.started = false
		p.target = nil
	}
	p.lastX, p.lastY = x, y
}

// hitDraggable returns the topmost identified element whose absolute box
// contains (x, y): highest StackOrder wins, later tree order breaks ties.
func (p *Pointer) hitDraggable(x, y float64) Element {
	var hit *StageNode
	walkNodes(p.stage.root, func(n *StageNode) {
		if n.Attr(AttrID) == "" {
			return
		}
		ax, ay := n.absolute()
		box := Rect{X: ax, Y: ay, Width: n.Width, Height: n.Height}
		if box.Contains(x, y) && (hit == nil || n.StackOrder >= hit.StackOrder) {
			hit = n
		}
	})
	if hit == nil {
		return nil
	}
	return hit
}

// --- Synthetic input injection ---

// InjectPress queues a synthetic press at (x, y), consumed on the next
// Update.
func (p *Pointer) InjectPress(x, y float64) {
	p.inject = append(p.inject, injectedEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a synthetic held-down move to (x, y). Use between
// InjectPress and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.inject = append(p.inject, injectedEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a synthetic release at (x, y).
func (p *Pointer) InjectRelease(x, y float64) {
	p.inject = append(p.inject, injectedEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The whole sequence consumes frames Updates; minimum is 2.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// processInjected pops one queued synthetic event and feeds it through the
// state machine. Returns true if an event was consumed.
func (p *Pointer) processInjected() bool {
	if len(p.inject) == 0 {
		return false
	}
	evt := p.inject[0]
	copy(p.inject, p.inject[1:])
	p.inject = p.inject[:len(p.inject)-1]
	p.process(evt.x, evt.y, evt.pressed)
	return true
}
