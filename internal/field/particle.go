package field

import "math"

type ParticleKind uint8

const (
	ParticleAmbient ParticleKind = iota // drifts for the whole session
	ParticleBurst                       // spawned by a click, expires
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Opacity float64
	Col     RGB
	Kind    ParticleKind

	// Burst particles only.
	Life    int
	MaxLife int
}

// Mortal reports whether the particle carries a lifetime counter.
func (p *Particle) Mortal() bool { return p.Kind == ParticleBurst }

// Field owns the surface size, the particle collection and the last pointer
// position. It is not safe for concurrent use; the host loop drives it from a
// single goroutine.
type Field struct {
	W, H float64
	P    []Particle

	PointerX, PointerY float64

	rng Source
}

// NewField sizes the surface and seeds it with ambient particles.
func NewField(w, h int, rng Source) *Field {
	if rng == nil {
		rng = NewRand(1)
	}
	f := &Field{rng: rng}
	f.Resize(w, h)
	return f
}

// AmbientCount is the ambient population for a w×h surface.
func AmbientCount(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Floor(float64(w) * float64(h) / AmbientArea))
}

// Resize changes the surface size and regenerates the ambient set. Burst
// particles in flight are dropped along with the old collection.
func (f *Field) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.W = float64(w)
	f.H = float64(h)

	n := AmbientCount(w, h)
	next := make([]Particle, 0, n+BurstCount*4)
	for i := 0; i < n; i++ {
		next = append(next, NewAmbientParticle(f.rng, f.W, f.H))
	}
	f.P = next
}

// MovePointer records the pointer position verbatim.
func (f *Field) MovePointer(x, y float64) {
	f.PointerX = x
	f.PointerY = y
}

// Burst adds a click burst at (x, y).
func (f *Field) Burst(x, y float64) {
	b := SpawnBurst(f.rng, x, y)
	f.P = append(f.P, b[:]...)
}

// Len returns the number of live particles.
func (f *Field) Len() int { return len(f.P) }
