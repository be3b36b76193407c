package component

import "github.com/milk9111/hyperspace/player"

// PlayerView is the display derived from the player after each update.
type PlayerView struct {
	Display player.Display
	// Revision increases every time Display changes.
	Revision uint64
}

var PlayerViewComponent = NewComponent[PlayerView]()
