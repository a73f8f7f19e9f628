// Package gates contains the built-in gate classes.
package gates

import (
	"github.com/vsariola/gensyn"
)

// Class names of the built-in gates.
const (
	SimpleInput     = "Simple_Input"
	SimpleLFO       = "Simple_LFO"
	SineWave        = "Sine_Wave"
	Adder           = "Adder"
	SimpleAmplifier = "Simple_Amplifier"
	Glider          = "Glider"
	Output          = "GenSyn_Output"
	MIDIPitch       = "MIDI_Pitch"
	MIDIVelocity    = "MIDI_Velocity"
)

// Classes lists the built-in gate classes in registration order.
var Classes = []gensyn.Class{
	{
		Name:        SimpleInput,
		Description: "Provides a simple, static value.",
		Hooks:       gensyn.Hooks{Create: noState, Process: simpleInput, Destroy: noDestroy},
		Params:      []gensyn.Param{{Name: "value", Default: 0.5}},
	},
	{
		Name:        SimpleLFO,
		Description: "Provides simple, low-frequency oscillation as input.",
		Hooks:       gensyn.Hooks{Create: noState, Process: simpleLFO, Destroy: noDestroy},
		Params:      []gensyn.Param{{Name: "hz", Default: 0.5}, {Name: "max", Default: 1}},
	},
	{
		Name:        SineWave,
		Description: "Outputs a sine wave at the frequency given by the pitch input. The frequency only changes at upward zero crossings.",
		Hooks:       gensyn.Hooks{Create: newSineState, Process: sineWave, Destroy: noDestroy},
		Slots:       []string{"pitch", "velocity", "phase"},
	},
	{
		Name:        Adder,
		Description: "Takes multiple gates and adds their output together. The output is optionally normalized.",
		Hooks:       gensyn.Hooks{Create: noState, Process: adder, Destroy: noDestroy},
		Slots:       []string{"input0", "input1", "input2", "input3", "input4", "input5", "input6", "input7"},
		Params:      []gensyn.Param{{Name: "normalize", Default: 0}},
	},
	{
		Name:        SimpleAmplifier,
		Description: "Amplifies or lessens the incoming source by scaling it. Amplitudes are clipped.",
		Hooks:       gensyn.Hooks{Create: noState, Process: amplifier, Destroy: noDestroy},
		Slots:       []string{"input"},
		Params:      []gensyn.Param{{Name: "volume", Default: 1}},
	},
	{
		Name:        Glider,
		Description: "Interpolates between successive sample values.",
		Hooks:       gensyn.Hooks{Create: newGliderState, Process: glider, Destroy: noDestroy},
		Slots:       []string{"input"},
		Params:      []gensyn.Param{{Name: "interp_amount", Default: 0.1}},
	},
	{
		Name:        Output,
		Description: "Acts as the symbolic receiver of the waveform. The received waveform is passed to the device to be output as raw audio. As such, this is the endpoint for the synth.",
		Hooks:       gensyn.Hooks{Create: noState, Process: output, Destroy: noDestroy},
		Slots:       []string{"waveform"},
	},
	{
		Name:           MIDIPitch,
		Description:    "Outputs the pitch of the most recently pressed, still held MIDI note. Holds the last pitch after release.",
		Hooks:          gensyn.Hooks{Create: newNoteState, Process: midiPitch, Destroy: noDestroy},
		Params:         []gensyn.Param{{Name: "channel", Default: -1}},
		ReceivesEvents: true,
	},
	{
		Name:           MIDIVelocity,
		Description:    "Outputs the velocity of the most recently pressed, still held MIDI note, 0 when no note is held.",
		Hooks:          gensyn.Hooks{Create: newNoteState, Process: midiVelocity, Destroy: noDestroy},
		Params:         []gensyn.Param{{Name: "channel", Default: -1}},
		ReceivesEvents: true,
	},
}

// Register adds the built-in classes to r.
func Register(r *gensyn.Registry) error {
	for _, c := range Classes {
		if _, err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry with all the built-in classes.
func NewRegistry() *gensyn.Registry {
	r := gensyn.NewRegistry()
	for _, c := range Classes {
		r.MustRegister(c)
	}
	return r
}

func noState(gensyn.Gate) any { return nil }

func noDestroy(gensyn.Gate, any) {}
