//go:build cgo

package cmd

import (
	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/gomidi"
)

// NewMidiContext returns a MIDI context delivering events into the graph of
// the engine, and opens the input named in the config, if any.
func NewMidiContext(e *Engine) (gensyn.MIDIContext, error) {
	c := gomidi.NewContext(e.Graph.Deliver)
	return c, c.OpenByPrefix(e.Config.MIDI.Input, e.Config.MIDI.First)
}
