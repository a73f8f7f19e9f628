package oto_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsariola/gensyn/oto"
)

func TestFloatBufferTo32BitLE(t *testing.T) {
	src := []float32{0.5, 2, -3, -0.25}
	dst := make([]byte, 4*len(src))
	oto.FloatBufferTo32BitLE(src, dst)
	want := []float32{0.5, 1, -1, -0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(dst[4*i:]))
		assert.Equal(t, w, got, "sample %d", i)
	}
}
