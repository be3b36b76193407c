package starfield

import (
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// Star is a single point flying towards the viewer.
type Star struct {
	Pos      cp.Vector
	Z        float64
	Speed    float64
	Size     float64
	MaxTrail int
	Trail    Trail
}

// Circle is a filled circle draw command in screen space.
type Circle struct {
	X, Y, R float32
	Color   color.NRGBA
}

// Frame is the output of one Step: a translucent fill over the whole surface
// followed by circles in paint order. Circles is reused by the next Step.
type Frame struct {
	Width, Height float64
	Fill          color.NRGBA
	Circles       []Circle
}

// Field owns the star pool and the surface it is projected onto.
type Field struct {
	Stars  []Star
	Width  float64
	Height float64

	spec    Spec
	rng     *rand.Rand
	circles []Circle
}

// NewRand returns an unseeded-looking generator for production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewField creates spec.Count stars scattered over a width x height surface.
// A nil rng falls back to NewRand.
func NewField(spec Spec, width, height float64, rng *rand.Rand) *Field {
	if rng == nil {
		rng = NewRand()
	}
	spec = spec.normalized()
	f := &Field{
		Stars:  make([]Star, spec.Count),
		Width:  width,
		Height: height,
		spec:   spec,
		rng:    rng,
	}
	for i := range f.Stars {
		maxTrail := spec.MinTrail + rng.IntN(spec.MaxTrail-spec.MinTrail+1)
		f.Stars[i] = Star{
			Pos:      f.randomPos(),
			Z:        (1 - rng.Float64()) * width,
			Speed:    spec.MinSpeed + rng.Float64()*(spec.MaxSpeed-spec.MinSpeed),
			Size:     spec.MinSize + rng.Float64()*(spec.MaxSize-spec.MinSize),
			MaxTrail: maxTrail,
			Trail:    NewTrail(maxTrail),
		}
	}
	return f
}

// Spec returns the normalized tuning the field was built with.
// Resize changes the surface size. Star positions are left as they are.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

func (f *Field) randomPos() cp.Vector {
	return cp.Vector{X: f.rng.Float64() * f.Width, Y: f.rng.Float64() * f.Height}
}

func (f *Field) respawn(s *Star) {
	s.Pos = f.randomPos()
	s.Z = f.Width
	s.Trail.Reset()
}

// Step advances every star by dt ticks and returns what to paint. One tick is
// one 60 Hz frame.
func (f *Field) Step(dt float64) Frame {
	f.circles = f.circles[:0]
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Trail.Push(Point{Pos: s.Pos, Z: s.Z})

		s.Z -= s.Speed * f.spec.SpeedMultiplier * dt
		if s.Z <= 0 {
			f.respawn(s)
		}

		f.appendTrail(s)
		f.appendStar(s)
	}
	return Frame{
		Width:   f.Width,
		Height:  f.Height,
		Fill:    f.spec.Background,
		Circles: f.circles,
	}
}

func (f *Field) appendTrail(s *Star) {
	n := s.Trail.Len()
	for i := 0; i < n; i++ {
		p := s.Trail.At(i)
		pos, ok := Project(p.Pos, p.Z, f.Width, f.Height)
		if !ok {
			continue
		}
		t := float64(i) / float64(n)
		r := s.Size * t * f.spec.TrailScale
		if r <= 0 {
			continue
		}
		f.circles = append(f.circles, Circle{
			X:     float32(pos.X),
			Y:     float32(pos.Y),
			R:     float32(r),
			Color: white(t * f.spec.TrailAlpha),
		})
	}
}

func (f *Field) appendStar(s *Star) {
	pos, ok := Project(s.Pos, s.Z, f.Width, f.Height)
	if !ok || !onSurface(pos, f.Width, f.Height) {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	// glow goes underneath the core
	if s.Size > f.spec.GlowThreshold {
		f.circles = append(f.circles, Circle{
			X:     x,
			Y:     y,
			R:     float32(s.Size * f.spec.GlowScale),
			Color: white(f.spec.GlowAlpha),
		})
	}
	f.circles = append(f.circles, Circle{X: x, Y: y, R: float32(s.Size), Color: white(1)})
}

func white(alpha float64) color.NRGBA {
	if alpha > 1 {
		alpha = 1
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(alpha*255 + 0.5)}
}
