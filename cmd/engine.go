package cmd

import (
	"errors"
	"fmt"

	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/command"
	"github.com/vsariola/gensyn/gates"
	"github.com/vsariola/gensyn/graph"
)

// OutputName is the name of the gate every engine renders.
const OutputName = "output"

// Engine bundles a graph of the built-in gates and a command processor for
// it. The engine renders whatever gate is named OutputName at the time, so
// the output can be removed and added again.
type Engine struct {
	Graph     *graph.Graph
	Processor *command.Processor
	Config    Config
}

func NewEngine(config Config) (*Engine, error) {
	g := graph.New(gates.NewRegistry(), graph.Config{
		EventQueue:    config.EventQueue,
		MutationQueue: config.MutationQueue,
	})
	if _, err := g.Add(gates.Output, OutputName); err != nil {
		return nil, fmt.Errorf("cannot create the output gate: %w", err)
	}
	return &Engine{Graph: g, Processor: command.New(g), Config: config}, nil
}

// Render renders the next len(buf) samples of the output gate. Without an
// output gate the block is silent.
func (e *Engine) Render(buf []float32) error {
	return e.RenderAt(buf, float32(e.Config.SampleRate))
}

// RenderAt is Render at a sample rate chosen by the caller, such as a plugin
// host.
func (e *Engine) RenderAt(buf []float32, sampleRate float32) error {
	err := e.Graph.RenderNamed(OutputName, buf, sampleRate)
	if errors.Is(err, gensyn.ErrUnknownGate) {
		clear(buf)
		return nil
	}
	return err
}

// MIDIGates names the gates attached by AttachMIDIGates.
type MIDIGates struct {
	Pitch, Velocity string
}

// AttachMIDIGates queues the creation of an anonymous MIDI_Pitch and
// MIDI_Velocity gate pair, to follow an opened MIDI input. It never blocks,
// so it can be called while a render is in progress; the gates appear at the
// start of the next render or Flush, and their names are sent on the returned
// channel. ok is false if the mutation queue is full.
func (e *Engine) AttachMIDIGates() (names <-chan MIDIGates, ok bool) {
	c := make(chan MIDIGates, 1)
	ok = e.Graph.Post(func(tx *graph.Tx) {
		var m MIDIGates
		_, m.Pitch, _ = tx.AddAnonymous(gates.MIDIPitch)
		_, m.Velocity, _ = tx.AddAnonymous(gates.MIDIVelocity)
		c <- m
	})
	return c, ok
}

// RenderTo renders n samples in blocks of the configured size into sink.
// The sink is not closed.
func (e *Engine) RenderTo(sink gensyn.AudioSink, n int) error {
	blockSize := e.Config.BlockSize
	if blockSize < 1 {
		blockSize = 256
	}
	buf := make([]float32, blockSize)
	for n > 0 {
		block := buf[:min(n, blockSize)]
		if err := e.Render(block); err != nil {
			return err
		}
		if err := sink.WriteAudio(block); err != nil {
			return err
		}
		n -= len(block)
	}
	return nil
}

// RenderBuffer renders n samples into a new buffer.
func (e *Engine) RenderBuffer(n int) ([]float32, error) {
	b := &bufferSink{}
	if err := e.RenderTo(b, n); err != nil {
		return nil, err
	}
	return b.samples, nil
}

type bufferSink struct{ samples []float32 }

func (b *bufferSink) WriteAudio(buffer []float32) error {
	b.samples = append(b.samples, buffer...)
	return nil
}

func (b *bufferSink) Close() error { return nil }
