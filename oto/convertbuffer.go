package oto

import (
	"encoding/binary"
	"math"
)

// FloatBufferTo32BitLE encodes floatBuffer as little-endian float32 into dst,
// which must hold at least 4*len(floatBuffer) bytes. Samples are clipped to
// [-1,1] on the way, as the device expects.
func FloatBufferTo32BitLE(floatBuffer []float32, dst []byte) {
	for i, v := range floatBuffer {
		if v < -1.0 {
			v = -1.0
		} else if v > 1.0 {
			v = 1.0
		}
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
}
