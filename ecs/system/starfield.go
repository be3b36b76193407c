package system

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
	"github.com/milk9111/hyperspace/starfield"
)

// StarfieldSystem advances every star pool by one tick and paints the frame
// onto the pool's canvas. Draw only composites the canvas, so the fill and the
// circles happen exactly once per tick regardless of the frame rate.
type StarfieldSystem struct {
	rng *rand.Rand
}

// NewStarfieldSystem uses rng for rebuilt pools; nil means unseeded.
func NewStarfieldSystem(rng *rand.Rand) *StarfieldSystem {
	if rng == nil {
		rng = starfield.NewRand()
	}
	return &StarfieldSystem{rng: rng}
}

func (s *StarfieldSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	reqs := consumeRequests(w, component.StarfieldRebuildRequestComponent.Kind())

	ecs.ForEach(w, component.StarfieldComponent.Kind(), func(_ ecs.Entity, sf *component.Starfield) {
		if len(reqs) > 0 && sf.Field != nil {
			latest := reqs[len(reqs)-1]
			sf.Field = starfield.NewField(latest.Spec, sf.Field.Width, sf.Field.Height, s.rng)
			sf.Frames = 0
		}
		if sf.Field == nil {
			return
		}
		frame := sf.Field.Step(1)
		sf.Frames++
		if sf.Canvas != nil {
			starfield.Paint(sf.Canvas, frame)
		}
	})
}

func (s *StarfieldSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.StarfieldComponent.Kind(), func(_ ecs.Entity, sf *component.Starfield) {
		if sf.Canvas == nil {
			return
		}
		screen.DrawImage(sf.Canvas, nil)
	})
}
