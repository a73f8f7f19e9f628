package gates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/gates"
	"github.com/vsariola/gensyn/graph"
)

const sr = 44100

type patch struct {
	t *testing.T
	g *graph.Graph
}

func newPatch(t *testing.T) *patch {
	return &patch{t: t, g: graph.New(gates.NewRegistry(), graph.DefaultConfig)}
}

func (p *patch) add(class string, params ...any) graph.Handle {
	p.t.Helper()
	h, err := p.g.Instantiate(class)
	require.NoError(p.t, err)
	for i := 0; i+1 < len(params); i += 2 {
		p.g.SetParam(h, params[i].(string), float32(params[i+1].(float64)))
	}
	return h
}

func (p *patch) connect(from graph.Handle, slot string, to graph.Handle) {
	p.t.Helper()
	require.NoError(p.t, p.g.Connect(from, slot, to))
}

func (p *patch) render(out graph.Handle, n int) []float32 {
	p.t.Helper()
	buf := make([]float32, n)
	require.NoError(p.t, p.g.Render(out, buf, sr))
	return buf
}

func upwardCrossings(buf []float32) []int {
	var ret []int
	for i := 1; i < len(buf); i++ {
		if buf[i-1] < 0 && buf[i] >= 0 {
			ret = append(ret, i)
		}
	}
	return ret
}

func TestRegistry(t *testing.T) {
	r := gates.NewRegistry()
	assert.Len(t, r.Names(), len(gates.Classes))
	d, ok := r.Lookup(gates.Adder)
	require.True(t, ok)
	assert.Equal(t, 8, d.NumSlots())
	d, ok = r.Lookup(gates.Glider)
	require.True(t, ok)
	assert.Equal(t, []gensyn.Param{{Name: "interp_amount", Default: 0.1}}, d.Params())
	require.Error(t, gates.Register(r), "registering twice must fail")
	assert.NoError(t, gates.Register(gensyn.NewRegistry()))
}

func TestInputThroughAdderToOutput(t *testing.T) {
	p := newPatch(t)
	in := p.add(gates.SimpleInput)
	sum := p.add(gates.Adder)
	out := p.add(gates.Output)
	p.connect(in, "input0", sum)
	p.connect(sum, "waveform", out)
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, p.render(out, 4))
	assert.Equal(t, gensyn.InputGate, p.g.Type(in))
	assert.Equal(t, gensyn.TransformGate, p.g.Type(sum))
	assert.Equal(t, gensyn.OutputGate, p.g.Type(out))
}

func TestOutputWithoutInputIsSilent(t *testing.T) {
	p := newPatch(t)
	out := p.add(gates.Output)
	assert.Equal(t, make([]float32, 8), p.render(out, 8))
	assert.ErrorIs(t, p.g.Status(out), gensyn.ErrInsufficientInput)
}

func TestAdderNormalize(t *testing.T) {
	p := newPatch(t)
	a := p.add(gates.SimpleInput, "value", 0.5)
	b := p.add(gates.SimpleInput, "value", 0.25)
	sum := p.add(gates.Adder)
	p.connect(a, "input0", sum)
	p.connect(b, "input5", sum)
	assert.InDeltaSlice(t, []float32{0.75, 0.75}, p.render(sum, 2), 1e-6)
	p.g.SetParam(sum, "normalize", 1)
	assert.InDeltaSlice(t, []float32{1, 1}, p.render(sum, 2), 1e-6)
	empty := p.add(gates.Adder, "normalize", 1.0)
	assert.Equal(t, []float32{0, 0}, p.render(empty, 2))
}

func TestAmplifierClips(t *testing.T) {
	p := newPatch(t)
	in := p.add(gates.SimpleInput, "value", 0.4)
	amp := p.add(gates.SimpleAmplifier, "volume", 2.0)
	p.connect(in, "input", amp)
	assert.InDeltaSlice(t, []float32{0.8, 0.8}, p.render(amp, 2), 1e-6)
	p.g.SetParam(amp, "volume", 5)
	assert.Equal(t, []float32{1, 1}, p.render(amp, 2))
	p.g.SetParam(amp, "volume", -5)
	assert.Equal(t, []float32{-1, -1}, p.render(amp, 2))
}

func TestGlider(t *testing.T) {
	p := newPatch(t)
	in := p.add(gates.SimpleInput, "value", 1.0)
	gl := p.add(gates.Glider, "interp_amount", 0.5)
	p.connect(in, "input", gl)
	assert.InDeltaSlice(t, []float32{0.5, 0.75, 0.875}, p.render(gl, 3), 1e-6)
	assert.InDeltaSlice(t, []float32{0.9375}, p.render(gl, 1), 1e-6, "state carries over blocks")
	p.g.SetParam(gl, "interp_amount", 7)
	buf := p.render(gl, 1)
	assert.InDelta(t, 1, buf[0], 1e-4, "amount is clamped below 1")
}

func TestLFO(t *testing.T) {
	p := newPatch(t)
	lfo := p.add(gates.SimpleLFO, "hz", 1.0, "max", 0.5)
	buf := p.render(lfo, sr)
	assert.InDelta(t, 0, buf[0], 1e-6)
	assert.InDelta(t, 0.5, buf[sr/4], 1e-4)
	assert.InDelta(t, -0.5, buf[3*sr/4], 1e-4)
}

func TestSineWaveCrossings(t *testing.T) {
	p := newPatch(t)
	pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(440)))
	sine := p.add(gates.SineWave)
	p.connect(pitch, "pitch", sine)
	buf := p.render(sine, 1000)
	assert.Equal(t, []int{101, 202, 303, 404, 505, 606, 707, 808, 909}, upwardCrossings(buf))
	for _, v := range buf {
		require.LessOrEqual(t, math.Abs(float64(v)), 1.0)
	}
}

func TestSineWaveSplitBlocks(t *testing.T) {
	whole := func() []float32 {
		p := newPatch(t)
		pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(440)))
		sine := p.add(gates.SineWave)
		p.connect(pitch, "pitch", sine)
		return p.render(sine, sr)
	}()
	p := newPatch(t)
	pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(440)))
	sine := p.add(gates.SineWave)
	p.connect(pitch, "pitch", sine)
	split := append(p.render(sine, sr/2), p.render(sine, sr/2)...)
	assert.Equal(t, whole, split)
}

func TestSineWaveFrequencyChangesAtCrossing(t *testing.T) {
	p := newPatch(t)
	pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(440)))
	sine := p.add(gates.SineWave)
	p.connect(pitch, "pitch", sine)
	first := p.render(sine, 150) // last crossing at 101
	p.g.SetParam(pitch, "value", gensyn.HzToPitch(220))
	second := p.render(sine, 300)
	buf := append(first, second...)
	// the running 440 Hz cycle completes at 202, after which the period is
	// about 200 samples
	assert.Equal(t, []int{101, 202, 403}, upwardCrossings(buf))
}

func TestSineWavePhaseOffset(t *testing.T) {
	p := newPatch(t)
	pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(441)))
	offset := p.add(gates.SimpleInput, "value", 0.25)
	sine := p.add(gates.SineWave)
	p.connect(pitch, "pitch", sine)
	p.connect(offset, "phase", sine)
	buf := p.render(sine, 400)
	assert.InDelta(t, 1, buf[0], 1e-6, "a quarter cycle ahead starts at the peak")
	maxStep := 2 * math.Pi * 441 / sr * 1.01
	for i := 1; i < len(buf); i++ {
		require.LessOrEqual(t, math.Abs(float64(buf[i]-buf[i-1])), maxStep, "jump at %d", i)
	}
	crossings := upwardCrossings(buf)
	require.Len(t, crossings, 4)
	assert.InDelta(t, 75, crossings[0], 1)
	for i := 1; i < len(crossings); i++ {
		assert.InDelta(t, 100, crossings[i]-crossings[i-1], 1.5)
	}
}

func TestSineWaveVelocity(t *testing.T) {
	p := newPatch(t)
	pitch := p.add(gates.SimpleInput, "value", float64(gensyn.HzToPitch(440)))
	vel := p.add(gates.SimpleInput, "value", 0.0)
	sine := p.add(gates.SineWave)
	p.connect(pitch, "pitch", sine)
	p.connect(vel, "velocity", sine)
	assert.Equal(t, make([]float32, 64), p.render(sine, 64))
}

func TestSineWaveNeedsPitch(t *testing.T) {
	p := newPatch(t)
	sine := p.add(gates.SineWave)
	p.render(sine, 16)
	assert.False(t, p.g.Active(sine))
}

func noteOn(ch, note, vel uint8) gensyn.Event {
	return gensyn.Event{Input: gensyn.NoteOn | ch, Data1: note, Data2: vel}
}

func noteOff(ch, note uint8) gensyn.Event {
	return gensyn.Event{Input: gensyn.NoteOff | ch, Data1: note}
}

func TestMIDIPitch(t *testing.T) {
	p := newPatch(t)
	mp := p.add(gates.MIDIPitch)
	p.render(mp, 4)
	assert.False(t, p.g.Active(mp), "no note pressed yet")

	a4 := gensyn.HzToPitch(440)
	a5 := gensyn.HzToPitch(880)
	require.True(t, p.g.Deliver(noteOn(0, 69, 100)))
	assert.InDeltaSlice(t, []float32{a4, a4}, p.render(mp, 2), 1e-6)
	require.True(t, p.g.Deliver(noteOn(0, 81, 100)))
	assert.InDeltaSlice(t, []float32{a5, a5}, p.render(mp, 2), 1e-6)
	require.True(t, p.g.Deliver(noteOff(0, 81)))
	assert.InDeltaSlice(t, []float32{a4, a4}, p.render(mp, 2), 1e-6, "falls back to the held note")
	require.True(t, p.g.Deliver(noteOff(0, 69)))
	assert.InDeltaSlice(t, []float32{a4, a4}, p.render(mp, 2), 1e-6, "holds the last pitch")
}

func TestMIDIVelocityChannelFilter(t *testing.T) {
	p := newPatch(t)
	mv := p.add(gates.MIDIVelocity, "channel", 2.0)
	require.True(t, p.g.Deliver(noteOn(1, 60, 127)))
	assert.Equal(t, []float32{0, 0}, p.render(mv, 2))
	require.True(t, p.g.Deliver(noteOn(2, 60, 127)))
	assert.Equal(t, []float32{1, 1}, p.render(mv, 2))
	require.True(t, p.g.Deliver(gensyn.Event{Input: gensyn.NoteOn | 2, Data1: 60}))
	assert.Equal(t, []float32{0, 0}, p.render(mv, 2), "note-on with zero velocity releases")
}
