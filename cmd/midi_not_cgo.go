//go:build !cgo

package cmd

import (
	"github.com/vsariola/gensyn"
)

func NewMidiContext(e *Engine) (gensyn.MIDIContext, error) {
	// with no cgo, we cannot use MIDI, so return a null context
	return gensyn.NullMIDIContext{}, nil
}
