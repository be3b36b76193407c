package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
)

// DebugSystem prints frame rate and pool statistics in the top-left corner.
type DebugSystem struct{}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(*ecs.World) {}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, debugText(w, ebiten.ActualFPS(), ebiten.ActualTPS()), 10, 10)
}

func debugText(w *ecs.World, fps, tps float64) string {
	text := fmt.Sprintf("FPS: %.2f  TPS: %.2f", fps, tps)
	if _, sf, ok := ecs.Single(w, component.StarfieldComponent.Kind()); ok && sf.Field != nil {
		text += fmt.Sprintf("\nStars: %d  Frames: %d", len(sf.Field.Stars), sf.Frames)
	}
	if _, pl, ok := ecs.Single(w, component.PlayerComponent.Kind()); ok {
		text += fmt.Sprintf("\nTrack: %d/%d %s  Volume: %.2f", pl.State.Index+1, pl.Playlist.Len(), pl.State.Status(), pl.State.Volume)
	}
	return text
}
