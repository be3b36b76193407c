package system

import (
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
	"github.com/milk9111/hyperspace/starfield"
)

// RequestPlayerEvent queues ev for the player system. Requests are applied in
// the order they were made.
func RequestPlayerEvent(w *ecs.World, ev player.Event) {
	if w == nil || ev == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.PlayerEventComponent.Kind(), &component.PlayerEvent{Event: ev})
}

func RequestClipboard(w *ecs.World, text string) {
	if w == nil || text == "" {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ClipboardRequestComponent.Kind(), &component.ClipboardRequest{Text: text})
}

func RequestStarfieldRebuild(w *ecs.World, spec starfield.Spec) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.StarfieldRebuildRequestComponent.Kind(), &component.StarfieldRebuildRequest{Spec: spec})
}

// consumeRequests returns every pending request of kind in order and destroys
// the request entities.
func consumeRequests[T any](w *ecs.World, kind component.ComponentKind[T]) []T {
	var reqs []T
	var ents []ecs.Entity
	ecs.ForEach(w, kind, func(ent ecs.Entity, req *T) {
		ents = append(ents, ent)
		reqs = append(reqs, *req)
	})
	for _, ent := range ents {
		ecs.DestroyEntity(w, ent)
	}
	return reqs
}
