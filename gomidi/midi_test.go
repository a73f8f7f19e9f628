package gomidi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"

	"github.com/vsariola/gensyn"
	"github.com/vsariola/gensyn/gomidi"
)

func TestToEvent(t *testing.T) {
	e, ok := gomidi.ToEvent(3, midi.NoteOn(2, 60, 100))
	assert.True(t, ok)
	assert.Equal(t, gensyn.Event{DeviceID: 3, Input: 0x92, Data1: 60, Data2: 100}, e)
	assert.True(t, e.IsNoteOn())
	assert.Equal(t, 2, e.Channel())

	e, ok = gomidi.ToEvent(0, midi.NoteOff(0, 60))
	assert.True(t, ok)
	assert.True(t, e.IsNoteOff())

	_, ok = gomidi.ToEvent(0, midi.Message{0xF8})
	assert.False(t, ok, "realtime messages are not events")
	_, ok = gomidi.ToEvent(0, nil)
	assert.False(t, ok)
}
