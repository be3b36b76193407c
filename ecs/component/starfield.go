package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/prefabs"
	"github.com/milk9111/hyperspace/starfield"
)

// Starfield holds the star pool and the offscreen canvas its frames are
// accumulated on. The canvas is never cleared; trails come from the
// translucent fill of each frame.
type Starfield struct {
	Field  *starfield.Field
	Canvas *ebiten.Image
	// Source is the prefab entry the pool was built from; hot reload reads
	// it again.
	Source prefabs.StarfieldComponentSpec

	// Frames counts steps since the pool was built.
	Frames int
}

var StarfieldComponent = NewComponent[Starfield]()
