package gates

import (
	"math"

	"github.com/viterin/vek/vek32"
	"github.com/vsariola/gensyn"
)

func simpleInput(g gensyn.Gate, _ any, _ [][]float32, out []float32, _ float32) bool {
	vek32.Repeat_Into(out, g.Param("value"), len(out))
	return true
}

func simpleLFO(g gensyn.Gate, _ any, _ [][]float32, out []float32, sampleRate float32) bool {
	hz := float64(g.Param("hz"))
	max := math.Min(math.Max(float64(g.Param("max")), 0), 1)
	tick := g.SampleTick()
	for i := range out {
		t := float64(tick+uint64(i)) / float64(sampleRate)
		out[i] = float32(math.Sin(2*math.Pi*hz*t) * max)
	}
	return true
}

// adder sums the connected inputs. Unconnected slots are skipped, so an adder
// with nothing connected outputs silence.
func adder(g gensyn.Gate, _ any, in [][]float32, out []float32, _ float32) bool {
	vek32.Zeros_Into(out, len(out))
	for _, buf := range in {
		if buf != nil {
			vek32.Add_Inplace(out, buf)
		}
	}
	if g.Param("normalize") > .5 && len(out) > 0 {
		peak := math.Max(math.Abs(float64(vek32.Max(out))), math.Abs(float64(vek32.Min(out))))
		if peak > 0 {
			vek32.DivNumber_Inplace(out, float32(peak))
		}
	}
	return true
}

func amplifier(g gensyn.Gate, _ any, in [][]float32, out []float32, _ float32) bool {
	if in[0] == nil {
		return false
	}
	copy(out, in[0])
	vek32.MulNumber_Inplace(out, g.Param("volume"))
	vek32.MinimumNumber_Inplace(out, 1)
	vek32.MaximumNumber_Inplace(out, -1)
	return true
}

func output(_ gensyn.Gate, _ any, in [][]float32, out []float32, _ float32) bool {
	if in[0] == nil {
		return false
	}
	copy(out, in[0])
	return true
}

type gliderState struct {
	prev float32
}

func newGliderState(gensyn.Gate) any { return &gliderState{} }

// glider is a one-pole smoother: each output moves interp_amount of the way
// from the previous output towards the input.
func glider(g gensyn.Gate, state any, in [][]float32, out []float32, _ float32) bool {
	if in[0] == nil {
		return false
	}
	s := state.(*gliderState)
	a := g.Param("interp_amount")
	if a > .99999 {
		a = .99999
	}
	if a < .00001 {
		a = .00001
	}
	for i, x := range in[0] {
		s.prev = x*a + s.prev*(1-a)
		out[i] = s.prev
	}
	return true
}
