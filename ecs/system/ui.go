package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/player"
)

// Panel is the on-screen player widget.
type Panel interface {
	Sync(d player.Display)
	Update()
	Draw(screen *ebiten.Image)
}

// UISystem pushes the published player display into the panel whenever it
// changes, then lets the panel handle input. User actions come back as
// player event requests, so they take effect on the next tick.
type UISystem struct {
	panel    Panel
	revision uint64
}

func NewUISystem(panel Panel) *UISystem {
	return &UISystem{panel: panel}
}

func (u *UISystem) Update(w *ecs.World) {
	if w == nil || u.panel == nil {
		return
	}
	if _, view, ok := ecs.Single(w, component.PlayerViewComponent.Kind()); ok && view.Revision != u.revision {
		u.revision = view.Revision
		u.panel.Sync(view.Display)
	}
	u.panel.Update()
}

func (u *UISystem) Draw(_ *ecs.World, screen *ebiten.Image) {
	if u.panel == nil {
		return
	}
	u.panel.Draw(screen)
}
