package field

import "math"

// Connection joins two particles closer than LinkDistance.
type Connection struct {
	I, J    int
	Opacity float64
}

// ConnectionOpacity returns the line opacity for two particles d apart and
// whether a line is drawn at all.
func ConnectionOpacity(d float64) (float64, bool) {
	if d >= LinkDistance || d < 0 {
		return 0, false
	}
	return (LinkDistance - d) / LinkDistance * LinkOpacity, true
}

// Connections appends every linked unordered pair to buf. The pass is
// quadratic in the particle count.
func (f *Field) Connections(buf []Connection) []Connection {
	buf = buf[:0]
	for i := 0; i < len(f.P); i++ {
		a := &f.P[i]
		for j := i + 1; j < len(f.P); j++ {
			b := &f.P[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			// Cheap reject before the sqrt.
			if math.Abs(dx) >= LinkDistance || math.Abs(dy) >= LinkDistance {
				continue
			}
			if op, ok := ConnectionOpacity(math.Sqrt(dx*dx + dy*dy)); ok {
				buf = append(buf, Connection{I: i, J: j, Opacity: op})
			}
		}
	}
	return buf
}

// Sprite floats per particle: x, y, radius, r, g, b, a.
const SpriteStride = 7

// RenderData fills the dot and halo sprite buffers.
// Format: [x, y, radius, r, g, b, a] * N. Halo radius includes GlowBlur.
func (f *Field) RenderData(dotBuf, haloBuf []float32) ([]float32, []float32) {
	dotBuf = dotBuf[:0]
	haloBuf = haloBuf[:0]
	for i := range f.P {
		p := &f.P[i]
		if p.Size <= 0 {
			continue
		}
		r, g, b := p.Col.Floats()
		x, y := float32(p.X), float32(p.Y)
		a := float32(clampF(p.Opacity, 0, 1))
		haloBuf = append(haloBuf, x, y, float32(p.Size+GlowBlur), r, g, b, GlowOpacity)
		dotBuf = append(dotBuf, x, y, float32(p.Size), r, g, b, a)
	}
	return dotBuf, haloBuf
}

// Line floats per vertex: x, y, a. Two vertices per connection.
const LineStride = 3

// LineData fills buf with connection line vertices.
func (f *Field) LineData(conns []Connection, buf []float32) []float32 {
	buf = buf[:0]
	for _, c := range conns {
		a, b := &f.P[c.I], &f.P[c.J]
		op := float32(c.Opacity)
		buf = append(buf,
			float32(a.X), float32(a.Y), op,
			float32(b.X), float32(b.Y), op,
		)
	}
	return buf
}
