package gensyn

import "strings"

type (
	// MIDIContext enumerates MIDI input devices. Opened devices deliver their
	// messages as Events.
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

// FindMIDIInput returns the first input whose name starts with prefix. An
// empty prefix matches the first input.
func FindMIDIInput(c MIDIContext, prefix string) (MIDIInputDevice, bool) {
	var ret MIDIInputDevice
	for input := range c.Inputs {
		if strings.HasPrefix(input.String(), prefix) {
			ret = input
			break
		}
	}
	return ret, ret != nil
}

// NullMIDIContext is a mockup MIDIContext if you don't want to create a real
// one.
type NullMIDIContext struct{}

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }
