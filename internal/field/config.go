package field

// Ambient density: one particle per AmbientArea square surface units.
const AmbientArea = 15000.0

// Ambient particle spawn ranges.
const (
	AmbientSpeed      = 0.25 // |vx|, |vy| upper bound
	AmbientMinSize    = 1.0
	AmbientMaxSize    = 3.0
	AmbientMinOpacity = 0.2
	AmbientMaxOpacity = 0.7
)

// Click burst.
const (
	BurstCount    = 5
	BurstJitter   = 0.375 // radians either side of the base angle
	BurstMinSpeed = 2.0
	BurstMaxSpeed = 4.0
	BurstMinSize  = 2.0
	BurstMaxSize  = 5.0
	BurstOpacity  = 0.8
	BurstLife     = 90 // frames
)

// Pointer repulsion.
const (
	RepelRadius   = 100.0
	RepelStrength = 0.01
)

// Per-frame velocity damping.
const Damping = 0.999

// Connections between nearby particles.
const (
	LinkDistance = 120.0
	LinkOpacity  = 0.1
)

// Halo drawn around every dot.
const (
	GlowBlur    = 10.0
	GlowOpacity = 0.3
)
