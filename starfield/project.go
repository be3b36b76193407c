package starfield

import "github.com/jakecoffman/cp"

// Project maps a plane position at depth z onto the screen with a pinhole
// camera whose focal length equals the surface width: scale = width / z,
// centered on the middle of the surface. It reports false for z <= 0, which
// has no screen position.
func Project(pos cp.Vector, z, width, height float64) (cp.Vector, bool) {
	if z <= 0 {
		return cp.Vector{}, false
	}
	center := cp.Vector{X: width / 2, Y: height / 2}
	return pos.Sub(center).Mult(width / z).Add(center), true
}

func onSurface(p cp.Vector, width, height float64) bool {
	return p.X >= 0 && p.X <= width && p.Y >= 0 && p.Y <= height
}
