package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func frame(buf []byte, i int) (left, right float64) {
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:]))
	return float64(l), float64(r)
}

func TestGenChimeLengthAndRange(t *testing.T) {
	buf := GenChime(0, 0)

	wantFrames := int(chimeDuration * SampleRate)
	if len(buf) != wantFrames*8 {
		t.Fatalf("Expected %d bytes, got %d", wantFrames*8, len(buf))
	}
	for i := 0; i < wantFrames; i++ {
		l, r := frame(buf, i)
		if math.Abs(l) > 1 || math.Abs(r) > 1 {
			t.Fatalf("frame %d out of range: %v %v", i, l, r)
		}
	}
}

func TestGenChimePan(t *testing.T) {
	tests := []struct {
		name      string
		pan       float64
		leftLoud  bool
		rightLoud bool
	}{
		{"Hard left", -1, true, false},
		{"Hard right", 1, false, true},
		{"Centre", 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := GenChime(2, tt.pan)
			var sumL, sumR float64
			for i := 0; i < len(buf)/8; i++ {
				l, r := frame(buf, i)
				sumL += math.Abs(l)
				sumR += math.Abs(r)
			}
			if (sumL > 1) != tt.leftLoud {
				t.Errorf("left energy %v, expected loud=%v", sumL, tt.leftLoud)
			}
			if (sumR > 1) != tt.rightLoud {
				t.Errorf("right energy %v, expected loud=%v", sumR, tt.rightLoud)
			}
		})
	}
}

func TestNilSystemIsSilent(t *testing.T) {
	var s *System
	s.PlayBurst(0)
}
