// Package snapdragon is a constrained, callback-driven drag-and-drop engine
// for elements positioned on a 2D stage.
//
// The core is host-agnostic: a per-element gesture state machine, a
// geometric constraint resolver (boundary clamps, axis locks, region
// containment), an overlap-based drop-target resolver, and a per-document
// session registry. Hosts plug in through the [Host] ports; the package
// ships a built-in [Stage] host and an Ebitengine [Pointer] adapter.
//
// # Quick start
//
//	stage := snapdragon.NewStage(640, 480)
//	piece := snapdragon.NewStageNode("piece")
//	piece.Width, piece.Height = 50, 50
//	piece.SetAttr(snapdragon.AttrID, "piece")
//	stage.RootNode().AddChild(piece)
//
//	engine := snapdragon.New()
//	doc := engine.Attach("main", stage)
//	doc.SetConstraints("piece", snapdragon.Constraint{
//		MinX: snapdragon.Limit(50), MaxX: snapdragon.Limit(500),
//	})
//	doc.SetInteractionMap(map[string]*snapdragon.HandlerSet{
//		"piece": {OnDrop: func(ev snapdragon.DragEvent) {
//			if ev.DropTarget != nil {
//				// landed on something
//			}
//		}},
//	})
//
// Feed the document phase-tagged events yourself via [Document.Handle], or
// let a [Pointer] translate Ebitengine mouse and touch input:
//
//	pointer := snapdragon.NewPointer(doc, stage)
//	// each frame:
//	stage.Update(1.0 / 60)
//	pointer.Update()
//
// # Transitions
//
// [Document.SnapBack] animates a dropped element to where its drag began,
// [Document.SnapTo] animates it onto another element or named region, and
// [Document.AutoSnap] instantly forces an element into compliance with its
// constraint spec. Animations run through the host's animated property
// writes; the built-in stage backs them with [gween] tweens and named
// easings ("quad-out", "bounce-out", ...).
//
// # Documents and scenes
//
// One [Engine] serves any number of independently loaded documents; state
// never leaks between them. Call [Engine.Attach] from your document-ready
// hook, [Document.SceneReady] when a scene is about to display (loads
// declarative drag-* attributes and applies configured auto-snaps), and
// [Document.SceneUnloaded] on the way out.
//
// The engine is single-threaded and cooperative: all gesture events are
// processed synchronously in arrival order, and the only deferred work
// (session cleanup, auto-snap) runs on the host's scheduler tick.
//
// [gween]: https://github.com/tanema/gween
package snapdragon
