package snapdragon

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StageNode is an element of the built-in stage: a named box in a
// translation-only tree. X and Y are relative to the parent. Declarative
// drag attributes (drag-id, drop-target, bounds, ...) live in the node's
// attribute map.
type StageNode struct {
	Name string

	Parent   *StageNode
	children []*StageNode

	X, Y          float64
	Width, Height float64
	StackOrder    float64

	// Container marks this node as a logical container for "parent"
	// containment resolution.
	Container bool

	attrs  map[string]string
	locked bool
}

// NewStageNode creates a node with the given name and no attributes.
func NewStageNode(name string) *StageNode {
	return &StageNode{Name: name}
}

// SetAttr sets a declarative attribute. An empty value removes it.
func (n *StageNode) SetAttr(name, value string) {
	if value == "" {
		delete(n.attrs, name)
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Attr returns a declarative attribute value, or "" when unset.
func (n *StageNode) Attr(name string) string {
	return n.attrs[name]
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. If child already has a
// parent, it is removed from that parent first. Panics if child is nil or
// an ancestor of this node (cycle).
func (n *StageNode) AddChild(child *StageNode) {
	if child == nil {
		panic("snapdragon: cannot add nil child")
	}
	if nodeIsAncestor(child, n) {
		panic("snapdragon: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node. Panics if child.Parent != n.
func (n *StageNode) RemoveChild(child *StageNode) {
	if child.Parent != n {
		panic("snapdragon: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent. No-op without one.
func (n *StageNode) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *StageNode) Children() []*StageNode {
	return n.children
}

// nodeIsAncestor reports whether candidate is an ancestor of node.
func nodeIsAncestor(candidate, node *StageNode) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *StageNode) removeChildByPtr(child *StageNode) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// absolute returns the node's stage-absolute position.
func (n *StageNode) absolute() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// --- Stage ---

type stageTask struct {
	due float64
	fn  func()
}

// propTween animates one property of one node via gween.
type propTween struct {
	node  *StageNode
	prop  Property
	tween *gween.Tween
}

// Stage is the built-in Host: a node tree plus a cooperative scheduler and
// tween list. Call Update(dt) once per frame (or per simulated step in
// tests); deferred engine tasks and animated property writes advance there
// and nowhere else. Single-threaded by design.
type Stage struct {
	root   *StageNode
	now    float64
	tasks  []stageTask
	tweens []*propTween
}

// NewStage creates a stage whose root is a container of the given size.
func NewStage(width, height float64) *Stage {
	root := NewStageNode("root")
	root.Width = width
	root.Height = height
	root.Container = true
	return &Stage{root: root}
}

// RootNode returns the root as a *StageNode for tree building.
func (st *Stage) RootNode() *StageNode {
	return st.root
}

// Update advances the stage clock by dt seconds, fires due deferred tasks,
// and steps property tweens. Tasks scheduled by a firing task run no
// earlier than the next Update.
func (st *Stage) Update(dt float64) {
	st.now += dt

	pending := st.tasks
	st.tasks = nil
	for _, task := range pending {
		if task.due <= st.now {
			task.fn()
		} else {
			st.tasks = append(st.tasks, task)
		}
	}

	live := st.tweens[:0]
	for _, pt := range st.tweens {
		v, finished := pt.tween.Update(float32(dt))
		st.Set(pt.node, pt.prop, float64(v))
		if !finished {
			live = append(live, pt)
		}
	}
	for i := len(live); i < len(st.tweens); i++ {
		st.tweens[i] = nil
	}
	st.tweens = live
}

// asNode unwraps an Element handle. Foreign handles yield nil, and every
// port method treats nil as "not on this stage".
func asNode(el Element) *StageNode {
	n, _ := el.(*StageNode)
	return n
}

// --- GeometryPort ---

func (st *Stage) Get(el Element, prop Property) float64 {
	n := asNode(el)
	if n == nil {
		return 0
	}
	switch prop {
	case Left:
		return n.X
	case Top:
		return n.Y
	case Width:
		return n.Width
	case Height:
		return n.Height
	case StackOrder:
		return n.StackOrder
	}
	return 0
}

func (st *Stage) Set(el Element, prop Property, value float64) {
	n := asNode(el)
	if n == nil {
		return
	}
	switch prop {
	case Left:
		n.X = value
	case Top:
		n.Y = value
	case Width:
		n.Width = value
	case Height:
		n.Height = value
	case StackOrder:
		n.StackOrder = value
	}
}

// Animate transitions prop to value over durationSeconds using the named
// easing. A zero duration degenerates to an instantaneous Set. Starting a
// new animation on the same node and property replaces the old one.
func (st *Stage) Animate(el Element, prop Property, value float64, durationSeconds float64, easing string) {
	n := asNode(el)
	if n == nil {
		return
	}
	if durationSeconds <= 0 {
		st.Set(el, prop, value)
		return
	}
	for i, pt := range st.tweens {
		if pt.node == n && pt.prop == prop {
			copy(st.tweens[i:], st.tweens[i+1:])
			st.tweens[len(st.tweens)-1] = nil
			st.tweens = st.tweens[:len(st.tweens)-1]
			break
		}
	}
	from := float32(st.Get(el, prop))
	st.tweens = append(st.tweens, &propTween{
		node:  n,
		prop:  prop,
		tween: gween.New(from, float32(value), float32(durationSeconds), easingFunc(easing)),
	})
}

// easingFunc maps an easing name to a gween ease function. Unknown names
// fall back to linear, per the GeometryPort contract.
func easingFunc(name string) ease.TweenFunc {
	switch name {
	case "", "linear":
		return ease.Linear
	case "quad-in":
		return ease.InQuad
	case "quad-out":
		return ease.OutQuad
	case "quad-in-out":
		return ease.InOutQuad
	case "cubic-in":
		return ease.InCubic
	case "cubic-out":
		return ease.OutCubic
	case "cubic-in-out":
		return ease.InOutCubic
	case "elastic-out":
		return ease.OutElastic
	case "back-out":
		return ease.OutBack
	case "bounce-out":
		return ease.OutBounce
	}
	return ease.Linear
}

// --- StagePort ---

func (st *Stage) Identifier(el Element) string {
	n := asNode(el)
	if n == nil {
		return ""
	}
	return n.Attr(AttrID)
}

func (st *Stage) ByIdentifier(id string) Element {
	if id == "" {
		return nil
	}
	if n := findNode(st.root, func(n *StageNode) bool { return n.Attr(AttrID) == id }); n != nil {
		return n
	}
	return nil
}

func (st *Stage) Draggables(scope Element) []Element {
	n := asNode(scope)
	if n == nil {
		n = st.root
	}
	var out []Element
	walkNodes(n, func(n *StageNode) {
		if n.Attr(AttrID) != "" {
			out = append(out, n)
		}
	})
	return out
}

func (st *Stage) DropTargets() []Element {
	var out []Element
	walkNodes(st.root, func(n *StageNode) {
		if n.Attr(AttrDropTarget) == "true" {
			out = append(out, n)
		}
	})
	return out
}

// Region resolves a selector against the stage by node name.
func (st *Stage) Region(selector string) Element {
	if selector == "" {
		return nil
	}
	if n := findNode(st.root, func(n *StageNode) bool { return n.Name == selector }); n != nil {
		return n
	}
	return nil
}

// Container returns the nearest ancestor marked Container, or nil.
func (st *Stage) Container(el Element) Element {
	n := asNode(el)
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Container {
			return p
		}
	}
	return nil
}

func (st *Stage) Root() Element {
	return st.root
}

func (st *Stage) Origin(el Element) (x, y float64) {
	n := asNode(el)
	if n == nil || n.Parent == nil {
		return 0, 0
	}
	return n.Parent.absolute()
}

func (st *Stage) SetLocked(el Element, locked bool) {
	if n := asNode(el); n != nil {
		n.locked = locked
	}
}

// Locked reports whether el or any of its ancestors is locked; locking a
// container disables its whole subtree.
func (st *Stage) Locked(el Element) bool {
	for p := asNode(el); p != nil; p = p.Parent {
		if p.locked {
			return true
		}
	}
	return false
}

func (st *Stage) Attr(el Element, name string) string {
	n := asNode(el)
	if n == nil {
		return ""
	}
	return n.Attr(name)
}

// --- Scheduler ---

// Defer schedules fn to run seconds from now, on a future Update.
func (st *Stage) Defer(seconds float64, fn func()) {
	st.tasks = append(st.tasks, stageTask{due: st.now + seconds, fn: fn})
}

// --- Traversal helpers ---

// walkNodes visits n and all descendants depth-first in tree order.
func walkNodes(n *StageNode, visit func(*StageNode)) {
	visit(n)
	for _, child := range n.children {
		walkNodes(child, visit)
	}
}

// findNode returns the first node in tree order matching pred, or nil.
func findNode(n *StageNode, pred func(*StageNode) bool) *StageNode {
	if pred(n) {
		return n
	}
	for _, child := range n.children {
		if found := findNode(child, pred); found != nil {
			return found
		}
	}
	return nil
}
