package gates

import (
	"github.com/viterin/vek/vek32"
	"github.com/vsariola/gensyn"
)

type (
	// noteState tracks the held notes of a MIDI event consumer. The last
	// pressed note wins; releasing it falls back to the previous held note.
	noteState struct {
		held    []heldNote
		pitch   float32
		started bool
	}

	heldNote struct {
		note, velocity uint8
	}
)

const maxHeldNotes = 16

func newNoteState(gensyn.Gate) any {
	return &noteState{held: make([]heldNote, 0, maxHeldNotes)}
}

func (s *noteState) update(g gensyn.Gate) {
	channel := int(g.Param("channel"))
	for _, e := range g.Events() {
		if channel >= 0 && e.Channel() != channel {
			continue
		}
		switch {
		case e.IsNoteOn():
			s.release(e.Data1)
			if len(s.held) == maxHeldNotes {
				s.held = append(s.held[:0], s.held[1:]...)
			}
			s.held = append(s.held, heldNote{note: e.Data1, velocity: e.Data2})
		case e.IsNoteOff():
			s.release(e.Data1)
		}
	}
	if n := len(s.held); n > 0 {
		s.pitch = gensyn.HzToPitch(gensyn.NoteToHz(s.held[n-1].note))
		s.started = true
	}
}

func (s *noteState) release(note uint8) {
	for i, h := range s.held {
		if h.note == note {
			s.held = append(s.held[:i], s.held[i+1:]...)
			return
		}
	}
}

// midiPitch fails until the first note has been pressed.
func midiPitch(g gensyn.Gate, state any, _ [][]float32, out []float32, _ float32) bool {
	s := state.(*noteState)
	s.update(g)
	if !s.started {
		return false
	}
	vek32.Repeat_Into(out, s.pitch, len(out))
	return true
}

func midiVelocity(g gensyn.Gate, state any, _ [][]float32, out []float32, _ float32) bool {
	s := state.(*noteState)
	s.update(g)
	var v float32
	if n := len(s.held); n > 0 {
		v = float32(s.held[n-1].velocity) / 127
	}
	vek32.Repeat_Into(out, v, len(out))
	return true
}
