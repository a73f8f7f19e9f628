package gensyn_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/gensyn"
)

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestRawSink(t *testing.T) {
	var w closeRecorder
	s := gensyn.NewRawSink(&w)
	require.NoError(t, s.WriteAudio([]float32{0.5, -1}))
	require.NoError(t, s.WriteAudio([]float32{0.25}))
	require.NoError(t, s.Close())
	assert.True(t, w.closed)
	b := w.Bytes()
	require.Len(t, b, 12)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(b[0:])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(b[4:])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(b[8:])))
}

func TestRawPCM16(t *testing.T) {
	b, err := gensyn.Raw([]float32{1, -2, 0}, true)
	require.NoError(t, err)
	require.Len(t, b, 6)
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(b[0:])))
	assert.Equal(t, int16(math.MinInt16), int16(binary.LittleEndian.Uint16(b[2:])))
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(b[4:])))
}

func TestWavHeader(t *testing.T) {
	b, err := gensyn.Wav(make([]float32, 10), 44100, true)
	require.NoError(t, err)
	require.Len(t, b, 44+20)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(b[22:]), "mono")
	assert.Equal(t, uint32(44100), binary.LittleEndian.Uint32(b[24:]))
	assert.Equal(t, "data", string(b[36:40]))
	assert.Equal(t, uint32(20), binary.LittleEndian.Uint32(b[40:]))
}
