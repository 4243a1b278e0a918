package field

import "math"

// NewAmbientParticle places a drifting particle uniformly inside a w×h surface.
func NewAmbientParticle(rng Source, w, h float64) Particle {
	return Particle{
		X:       rangeF(rng, 0, w),
		Y:       rangeF(rng, 0, h),
		VX:      rangeF(rng, -AmbientSpeed, AmbientSpeed),
		VY:      rangeF(rng, -AmbientSpeed, AmbientSpeed),
		Size:    rangeF(rng, AmbientMinSize, AmbientMaxSize),
		Opacity: rangeF(rng, AmbientMinOpacity, AmbientMaxOpacity),
		Col:     PickColor(rng),
		Kind:    ParticleAmbient,
	}
}

// SpawnBurst fans BurstCount particles out of (x, y), one per equal slice of
// the circle with some angular jitter.
func SpawnBurst(rng Source, x, y float64) [BurstCount]Particle {
	var out [BurstCount]Particle
	for i := range out {
		ang := math.Pi*2*float64(i)/BurstCount + rangeF(rng, -BurstJitter, BurstJitter)
		spd := rangeF(rng, BurstMinSpeed, BurstMaxSpeed)
		out[i] = Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    rangeF(rng, BurstMinSize, BurstMaxSize),
			Opacity: BurstOpacity,
			Col:     PickColor(rng),
			Kind:    ParticleBurst,
			Life:    BurstLife,
			MaxLife: BurstLife,
		}
	}
	return out
}
