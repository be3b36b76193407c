package component

import "github.com/milk9111/hyperspace/player"

// Player stores the playlist player on a dedicated entity. The player system
// mutates State; Media and Store are the effect targets of its commands.
type Player struct {
	Playlist player.Playlist
	State    player.State
	Media    player.Media
	Store    player.Store
}

var PlayerComponent = NewComponent[Player]()
