package starfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Paint renders f onto dst. dst must not be cleared between frames: the
// translucent fill is what fades the previous frames into trails.
func Paint(dst *ebiten.Image, f Frame) {
	if dst == nil {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(f.Width), float32(f.Height), f.Fill, false)
	for _, c := range f.Circles {
		vector.DrawFilledCircle(dst, c.X, c.Y, c.R, c.Color, true)
	}
}
