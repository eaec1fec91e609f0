package ecs

import (
	"github.com/phanxgames/snapdragon"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for snapdragon drag events.
// Subscribe to this in your ECS systems to receive every start, move, and
// drop event a document dispatches.
var DragEventType = events.NewEventType[snapdragon.DragEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Drag
// events are published to DragEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) snapdragon.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitDragEvent(event snapdragon.DragEvent) {
	DragEventType.Publish(s.world, event)
}
