package starfield

import "image/color"

// Spec holds the tuning for a star pool. Ranges are half-open [Min, Max) except
// the trail bounds, which are inclusive.
type Spec struct {
	Count int

	MinSpeed float64
	MaxSpeed float64
	MinSize  float64
	MaxSize  float64
	MinTrail int
	MaxTrail int

	// SpeedMultiplier scales Speed into depth units per tick.
	SpeedMultiplier float64

	// Background is painted over the whole surface every tick. Its alpha
	// controls how fast old frames fade out.
	Background color.NRGBA

	TrailAlpha float64
	TrailScale float64

	GlowThreshold float64
	GlowScale     float64
	GlowAlpha     float64
}

// DefaultSpec returns the stock hyperspace look.
func DefaultSpec() Spec {
	return Spec{
		Count:           150,
		MinSpeed:        0.02,
		MaxSpeed:        0.07,
		MinSize:         1,
		MaxSize:         3,
		MinTrail:        5,
		MaxTrail:        12,
		SpeedMultiplier: 50,
		Background:      color.NRGBA{R: 10, G: 10, B: 15, A: 204},
		TrailAlpha:      0.6,
		TrailScale:      0.7,
		GlowThreshold:   1.5,
		GlowScale:       1.5,
		GlowAlpha:       0.2,
	}
}

// normalized fills zero fields from DefaultSpec and orders inverted ranges.
func (s Spec) normalized() Spec {
	d := DefaultSpec()
	if s.Count <= 0 {
		s.Count = d.Count
	}
	if s.MaxSpeed <= 0 {
		s.MinSpeed, s.MaxSpeed = d.MinSpeed, d.MaxSpeed
	}
	if s.MaxSize <= 0 {
		s.MinSize, s.MaxSize = d.MinSize, d.MaxSize
	}
	if s.MaxTrail <= 0 {
		s.MinTrail, s.MaxTrail = d.MinTrail, d.MaxTrail
	}
	if s.MinSpeed > s.MaxSpeed {
		s.MinSpeed, s.MaxSpeed = s.MaxSpeed, s.MinSpeed
	}
	if s.MinSize > s.MaxSize {
		s.MinSize, s.MaxSize = s.MaxSize, s.MinSize
	}
	if s.MinTrail > s.MaxTrail {
		s.MinTrail, s.MaxTrail = s.MaxTrail, s.MinTrail
	}
	if s.MinTrail < 1 {
		s.MinTrail = 1
	}
	if s.SpeedMultiplier <= 0 {
		s.SpeedMultiplier = d.SpeedMultiplier
	}
	if s.Background == (color.NRGBA{}) {
		s.Background = d.Background
	}
	if s.TrailAlpha <= 0 {
		s.TrailAlpha = d.TrailAlpha
	}
	if s.TrailScale <= 0 {
		s.TrailScale = d.TrailScale
	}
	if s.GlowScale <= 0 {
		s.GlowScale = d.GlowScale
	}
	if s.GlowAlpha <= 0 {
		s.GlowAlpha = d.GlowAlpha
	}
	return s
}
