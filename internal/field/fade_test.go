package field

import (
	"math"
	"testing"
	"time"
)

func TestFadeAlpha(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"Before delay", 50 * time.Millisecond, 0},
		{"At delay", 100 * time.Millisecond, 0},
		{"Halfway", 600 * time.Millisecond, 0.5},
		{"Done", 1100 * time.Millisecond, 1},
		{"Long after", time.Minute, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultFade.Alpha(tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Alpha(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFadeMonotonic(t *testing.T) {
	prev := 0.0
	for ms := 0; ms <= 1300; ms += 10 {
		a := DefaultFade.Alpha(time.Duration(ms) * time.Millisecond)
		if a < prev {
			t.Fatalf("Alpha decreased at %dms: %v < %v", ms, a, prev)
		}
		prev = a
	}
}

func TestFadeZeroDuration(t *testing.T) {
	fd := Fade{}
	if got := fd.Alpha(time.Millisecond); got != 1 {
		t.Errorf("Expected instant fade, got %v", got)
	}
}
