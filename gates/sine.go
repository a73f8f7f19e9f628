package gates

import (
	"math"

	"github.com/viterin/vek/vek32"
	"github.com/vsariola/gensyn"
)

type sineState struct {
	freq   float64 // Hz
	anchor uint64  // sample tick of the last upward zero crossing
	last   float32 // base wave, without the phase offset
}

// The negative last sample makes the very first sample count as a crossing,
// so the frequency is picked up immediately.
func newSineState(gensyn.Gate) any { return &sineState{last: -1} }

// sineWave generates a sine whose frequency follows the pitch input. The
// frequency is only picked up at upward zero crossings of the base wave, so a
// moving pitch never causes a jump in the waveform. The phase of the current
// cycle is measured from the sample tick of the crossing where it started,
// which keeps it continuous across blocks. The phase input shifts the output
// by a number of cycles without affecting where the crossings are.
func sineWave(g gensyn.Gate, state any, in [][]float32, out []float32, sampleRate float32) bool {
	pitch, velocity, phase := in[0], in[1], in[2]
	if pitch == nil {
		return false
	}
	s := state.(*sineState)
	tick := g.SampleTick()
	sr := float64(sampleRate)
	for i := range out {
		t := tick + uint64(i)
		x := s.freq * float64(t-s.anchor) / sr
		base := float32(math.Sin(2 * math.Pi * x))
		if s.last < 0 && base >= 0 {
			s.anchor = t
			s.freq = gensyn.PitchToHz(pitch[i])
		}
		s.last = base
		if phase != nil {
			out[i] = float32(math.Sin(2 * math.Pi * (x + float64(phase[i]))))
		} else {
			out[i] = base
		}
	}
	if velocity != nil {
		vek32.Mul_Inplace(out, velocity)
	}
	return true
}
