package field

import (
	"math"
	"testing"
)

func TestRepulsionImpulse(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		px, py  float64
		wantMag float64
	}{
		{"Inside radius", 0, 0, 50, 0, 0.005},
		{"Diagonal inside", 10, 10, 40, 50, (100.0 - 50.0) / 100.0 * 0.01},
		{"Beyond radius", 0, 0, 150, 0, 0},
		{"On the edge", 0, 0, 100, 0, 0},
		{"On the pointer", 30, 30, 30, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dvx, dvy := RepulsionImpulse(tt.x, tt.y, tt.px, tt.py)
			mag := math.Hypot(dvx, dvy)
			if math.Abs(mag-tt.wantMag) > 1e-12 {
				t.Fatalf("Expected magnitude %v, got %v", tt.wantMag, mag)
			}
			if mag == 0 {
				return
			}
			// Must point away from the pointer.
			if dot := dvx*(tt.px-tt.x) + dvy*(tt.py-tt.y); dot >= 0 {
				t.Errorf("Impulse (%v, %v) does not point away from pointer", dvx, dvy)
			}
		})
	}
}

func TestUpdateAppliesRepulsionAndDamping(t *testing.T) {
	f := &Field{W: 200, H: 200, PointerX: 50, PointerY: 10}
	f.P = []Particle{{X: 0, Y: 10, Size: 1, Opacity: 0.5}}

	f.Update()

	p := f.P[0]
	want := -0.005 * Damping
	if math.Abs(p.VX-want) > 1e-12 {
		t.Errorf("Expected vx %v, got %v", want, p.VX)
	}
	if p.VY != 0 {
		t.Errorf("Expected vy 0, got %v", p.VY)
	}
}

func TestUpdateWrapsEdges(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantX, wantY float64
	}{
		{"Left edge", 0.2, 50, -0.5, 0, 100, 50},
		{"Right edge", 99.8, 50, 0.5, 0, 0, 50},
		{"Top edge", 50, 0.1, 0, -0.2, 50, 80},
		{"Bottom edge", 50, 79.9, 0, 0.2, 50, 0},
		{"Corner", 0.1, 0.1, -0.2, -0.2, 100, 80},
		{"Exactly on edge stays", 100, 80, 0, 0, 100, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Field{W: 100, H: 80, PointerX: 1e6, PointerY: 1e6}
			f.P = []Particle{{X: tt.x, Y: tt.y, VX: tt.vx, VY: tt.vy, Size: 1, Opacity: 0.5}}

			f.Update()

			p := f.P[0]
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, p.X, p.Y)
			}
		})
	}
}

func TestUpdateBurstLifetime(t *testing.T) {
	f := NewField(100, 100, NewRand(1))
	if f.Len() != 0 {
		t.Fatalf("Expected no ambient particles on a 100x100 surface, got %d", f.Len())
	}
	f.MovePointer(1e6, 1e6)
	f.Burst(50, 50)

	f.Update()
	for _, p := range f.P {
		if p.Life != 89 {
			t.Fatalf("Expected life 89 after one frame, got %d", p.Life)
		}
		if want := 89.0 / 90.0 * 0.8; math.Abs(p.Opacity-want) > 1e-12 {
			t.Fatalf("Expected opacity %v, got %v", want, p.Opacity)
		}
	}

	for i := 0; i < 88; i++ {
		f.Update()
	}
	if f.Len() != BurstCount {
		t.Fatalf("Expected %d particles alive at life 1, got %d", BurstCount, f.Len())
	}

	f.Update()
	if f.Len() != 0 {
		t.Fatalf("Expected burst particles removed when life reached 0, got %d", f.Len())
	}

	f.Update()
	if f.Len() != 0 {
		t.Errorf("Expired particles reappeared")
	}
}

func TestUpdateRemovesOnlyExpired(t *testing.T) {
	f := &Field{W: 100, H: 100, PointerX: 1e6, PointerY: 1e6}
	f.P = []Particle{
		{X: 10, Y: 10, Size: 1, Opacity: 0.3, Kind: ParticleAmbient},
		{X: 20, Y: 20, Size: 2, Opacity: 0.8, Kind: ParticleBurst, Life: 1, MaxLife: 90},
		{X: 30, Y: 30, Size: 3, Opacity: 0.5, Kind: ParticleAmbient},
		{X: 40, Y: 40, Size: 2, Opacity: 0.8, Kind: ParticleBurst, Life: 5, MaxLife: 90},
	}

	f.Update()

	if f.Len() != 3 {
		t.Fatalf("Expected 3 particles, got %d", f.Len())
	}
	wantX := []float64{10, 30, 40}
	for i, p := range f.P {
		if p.X != wantX[i] {
			t.Errorf("particle %d: expected x %v, got %v", i, wantX[i], p.X)
		}
	}
}

func TestUpdateInvariants(t *testing.T) {
	r := NewRand(2024)
	f := NewField(640, 480, r)

	for frame := 0; frame < 600; frame++ {
		if frame%20 == 0 {
			f.Burst(r.RangeF(0, 640), r.RangeF(0, 480))
		}
		f.MovePointer(r.RangeF(-50, 700), r.RangeF(-50, 530))
		f.Update()

		for i, p := range f.P {
			if p.Opacity < 0 || p.Opacity > 1 {
				t.Fatalf("frame %d particle %d: opacity %v", frame, i, p.Opacity)
			}
			if p.Size <= 0 {
				t.Fatalf("frame %d particle %d: size %v", frame, i, p.Size)
			}
			if p.X < 0 || p.X > f.W || p.Y < 0 || p.Y > f.H {
				t.Fatalf("frame %d particle %d: (%v, %v) outside %vx%v", frame, i, p.X, p.Y, f.W, f.H)
			}
			if p.Mortal() && (p.Life <= 0 || p.Life > p.MaxLife) {
				t.Fatalf("frame %d particle %d: life %d/%d", frame, i, p.Life, p.MaxLife)
			}
		}
	}
}
