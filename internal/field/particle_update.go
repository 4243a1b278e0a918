package field

import (
	"math"
	"slices"
)

// Update advances every particle by one frame. The collection is walked from
// the back so expired burst particles can be removed in place.
func (f *Field) Update() {
	for i := len(f.P) - 1; i >= 0; i-- {
		p := &f.P[i]

		p.X += p.VX
		p.Y += p.VY

		dvx, dvy := RepulsionImpulse(p.X, p.Y, f.PointerX, f.PointerY)
		p.VX += dvx
		p.VY += dvy

		if p.Mortal() {
			p.Life--
			p.Opacity = clampF(float64(p.Life)/float64(p.MaxLife)*BurstOpacity, 0, 1)
			if p.Life <= 0 {
				f.P = slices.Delete(f.P, i, i+1)
				continue
			}
		}

		// Axes wrap independently.
		if p.X < 0 {
			p.X = f.W
		}
		if p.X > f.W {
			p.X = 0
		}
		if p.Y < 0 {
			p.Y = f.H
		}
		if p.Y > f.H {
			p.Y = 0
		}

		p.VX *= Damping
		p.VY *= Damping
	}
}

// RepulsionImpulse is the velocity change pushing a particle at (x, y) away
// from the pointer at (px, py). It is zero at or beyond RepelRadius and when
// the particle sits exactly on the pointer.
func RepulsionImpulse(x, y, px, py float64) (dvx, dvy float64) {
	dx := px - x
	dy := py - y
	d := math.Sqrt(dx*dx + dy*dy)
	if d >= RepelRadius || d == 0 {
		return 0, 0
	}
	force := (RepelRadius - d) / RepelRadius * RepelStrength
	return -dx / d * force, -dy / d * force
}
