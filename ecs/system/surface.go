package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hyperspace/ecs"
	"github.com/milk9111/hyperspace/ecs/component"
)

// SurfaceSystem follows the window size. On a change it resets the starfield
// dimensions and replaces the canvas; star positions are left alone.
type SurfaceSystem struct {
	size      func() (int, int)
	newCanvas func(w, h int) *ebiten.Image
}

// NewSurfaceSystem reads the current surface size from size every tick.
func NewSurfaceSystem(size func() (int, int)) *SurfaceSystem {
	return &SurfaceSystem{size: size, newCanvas: ebiten.NewImage}
}

func (s *SurfaceSystem) Update(w *ecs.World) {
	if w == nil || s.size == nil {
		return
	}
	width, height := s.size()
	if width <= 0 || height <= 0 {
		return
	}

	ecs.ForEach(w, component.SurfaceComponent.Kind(), func(e ecs.Entity, surface *component.Surface) {
		sf, ok := ecs.Get(w, e, component.StarfieldComponent.Kind())
		changed := surface.Width != width || surface.Height != height
		if !changed && (!ok || sf.Canvas != nil) {
			return
		}
		surface.Width, surface.Height = width, height
		if !ok {
			return
		}
		if sf.Field != nil {
			sf.Field.Resize(float64(width), float64(height))
		}
		if sf.Canvas != nil {
			sf.Canvas.Deallocate()
		}
		sf.Canvas = s.newCanvas(width, height)
	})
}
