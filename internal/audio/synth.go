package audio

import "math"

// Chime timing.
const (
	chimeDuration = 0.16 // seconds
	chimeBaseFreq = 880.0
)

// pentatonic ratios keep successive chimes consonant with each other.
var pentatonic = [5]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

// GenChime renders a short bell-like pop as interleaved stereo float32 LE.
// variant picks the pitch; pan runs from -1 (left) to 1 (right).
func GenChime(variant uint64, pan float64) []byte {
	n := int(chimeDuration * SampleRate)
	buf := makeBuf(n)

	freq := chimeBaseFreq * pentatonic[variant%uint64(len(pentatonic))]
	// Equal-power pan.
	theta := (clampF(pan, -1, 1) + 1) * math.Pi / 4
	gainL, gainR := math.Cos(theta), math.Sin(theta)

	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.35, 0.25, 0.6)
		s := fm(t, freq, 2.0, 1.2*(1-p)) * env * 0.32
		s = softSat(s)
		putStereoF32LR(buf, i, s*gainL, s*gainR)
	}
	return buf
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
