package field

import "time"

// Fade is the one-shot entrance transition: everything is invisible until
// Delay has passed, then eases up to fully opaque over Duration.
type Fade struct {
	Delay    time.Duration
	Duration time.Duration
}

var DefaultFade = Fade{Delay: 100 * time.Millisecond, Duration: time.Second}

// Alpha returns the fade level in [0, 1] at elapsed time since start.
func (fd Fade) Alpha(elapsed time.Duration) float64 {
	t := elapsed - fd.Delay
	if t <= 0 {
		return 0
	}
	if fd.Duration <= 0 || t >= fd.Duration {
		return 1
	}
	return easeInOut(float64(t) / float64(fd.Duration))
}

// easeInOut is a cubic smoothstep, symmetric around 0.5.
func easeInOut(x float64) float64 {
	x = clampF(x, 0, 1)
	return x * x * (3 - 2*x)
}
