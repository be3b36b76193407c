package component

import "github.com/milk9111/hyperspace/player"

// PlayerEvent is a one-shot user event for the player. Requests are applied in
// entity order and destroyed in the same frame.
type PlayerEvent struct {
	Event player.Event
}

var PlayerEventComponent = NewComponent[PlayerEvent]()
