package system

import (
	"log"

	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
)

// PlayerSystem feeds media notifications and queued user events through
// player.Apply, executes the resulting commands and publishes the display.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (p *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	reqs := consumeRequests(w, component.PlayerEventComponent.Kind())

	ent, pl, ok := ecs.Single(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	var events []player.Event
	if ecs.Has(w, ent, component.PlayerStartupComponent.Kind()) {
		ecs.Remove(w, ent, component.PlayerStartupComponent.Kind())
		pl.State = player.NewState()
		events = append(events, player.Startup(pl.Store)...)
	}
	// Notifications belong to the source loaded before this tick's requests.
	if pl.Media != nil {
		events = append(events, pl.Media.Poll()...)
	}
	for _, req := range reqs {
		if req.Event != nil {
			events = append(events, req.Event)
		}
	}

	for _, ev := range events {
		next, cmds := player.Apply(pl.State, pl.Playlist, ev)
		pl.State = next
		if err := player.Execute(cmds, pl.Media, pl.Store); err != nil {
			log.Printf("player: %v", err)
		}
	}

	display := player.View(pl.State, pl.Playlist)
	view, ok := ecs.Get(w, ent, component.PlayerViewComponent.Kind())
	if !ok {
		_ = ecs.Add(w, ent, component.PlayerViewComponent.Kind(), &component.PlayerView{Display: display, Revision: 1})
		return
	}
	if view.Revision == 0 || view.Display != display {
		view.Display = display
		view.Revision++
	}
}
